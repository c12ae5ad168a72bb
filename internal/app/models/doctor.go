package models

// Doctor holds the directory record for one practitioner. SlotsBooked maps a
// date string ("2006-01-02") to the times already taken for that date; the
// list keeps insertion order and a time appears at most once per date while
// a matching non-cancelled appointment exists.
type Doctor struct {
	ID          string              `json:"_id" bson:"_id,omitempty"`
	Name        string              `json:"name" bson:"name"`
	Email       string              `json:"email" bson:"email"`
	Password    string              `json:"-" bson:"password"`
	Speciality  string              `json:"speciality" bson:"speciality"`
	Degree      string              `json:"degree" bson:"degree"`
	Experience  string              `json:"experience" bson:"experience"`
	About       string              `json:"about" bson:"about"`
	Fees        float64             `json:"fees" bson:"fees"`
	Address     Address             `json:"address" bson:"address"`
	Image       string              `json:"image,omitempty" bson:"image,omitempty"`
	Available   bool                `json:"available" bson:"available"`
	SlotsBooked map[string][]string `json:"slots_booked" bson:"slots_booked"`
	TimeModel   `bson:",inline"`
}

// Snapshot returns the doctor as embedded in an appointment at booking time.
// The credential and the booked-slot map are excluded.
func (d *Doctor) Snapshot() DoctorSnapshot {
	return DoctorSnapshot{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Speciality: d.Speciality,
		Degree:     d.Degree,
		Experience: d.Experience,
		About:      d.About,
		Fees:       d.Fees,
		Address:    d.Address,
		Image:      d.Image,
	}
}

type DoctorSnapshot struct {
	ID         string  `json:"_id" bson:"_id"`
	Name       string  `json:"name" bson:"name"`
	Email      string  `json:"email" bson:"email"`
	Speciality string  `json:"speciality" bson:"speciality"`
	Degree     string  `json:"degree" bson:"degree"`
	Experience string  `json:"experience" bson:"experience"`
	About      string  `json:"about" bson:"about"`
	Fees       float64 `json:"fees" bson:"fees"`
	Address    Address `json:"address" bson:"address"`
	Image      string  `json:"image,omitempty" bson:"image,omitempty"`
}
