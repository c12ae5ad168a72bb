package requests

type AddDoctor struct {
	Name       string         `json:"name" validate:"required"`
	Email      string         `json:"email" validate:"required,email"`
	Password   string         `json:"password" validate:"required,min=8"`
	Speciality string         `json:"speciality" validate:"required"`
	Degree     string         `json:"degree" validate:"required"`
	Experience string         `json:"experience" validate:"required"`
	About      string         `json:"about" validate:"required"`
	Fees       float64        `json:"fees" validate:"required"`
	Address    AddressPayload `json:"address"`
	Image      *UploadedImage `json:"-"`
}

type ChangeAvailability struct {
	DocID string `json:"docId" validate:"required"`
}

type UpdateDoctorProfile struct {
	Fees      float64        `json:"fees"`
	Address   AddressPayload `json:"address"`
	About     string         `json:"about"`
	Available bool           `json:"available"`
}
