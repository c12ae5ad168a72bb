package responses

import "predictacare-service/internal/app/models"

// DoctorPublic is the directory entry exposed to the booking UI: no
// credential, no email. The booked-slot map is included so the UI can grey
// out taken times.
type DoctorPublic struct {
	ID          string              `json:"_id"`
	Name        string              `json:"name"`
	Speciality  string              `json:"speciality"`
	Degree      string              `json:"degree"`
	Experience  string              `json:"experience"`
	About       string              `json:"about"`
	Fees        float64             `json:"fees"`
	Address     models.Address      `json:"address"`
	Image       string              `json:"image,omitempty"`
	Available   bool                `json:"available"`
	SlotsBooked map[string][]string `json:"slots_booked"`
}

func NewDoctorPublic(doctor models.Doctor) DoctorPublic {
	return DoctorPublic{
		ID:          doctor.ID,
		Name:        doctor.Name,
		Speciality:  doctor.Speciality,
		Degree:      doctor.Degree,
		Experience:  doctor.Experience,
		About:       doctor.About,
		Fees:        doctor.Fees,
		Address:     doctor.Address,
		Image:       doctor.Image,
		Available:   doctor.Available,
		SlotsBooked: doctor.SlotsBooked,
	}
}
