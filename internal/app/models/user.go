package models

type Address struct {
	Line1 string `json:"line1" bson:"line1"`
	Line2 string `json:"line2,omitempty" bson:"line2,omitempty"`
}

type User struct {
	ID        string  `json:"_id" bson:"_id,omitempty"`
	Name      string  `json:"name" bson:"name"`
	Email     string  `json:"email" bson:"email"`
	Password  string  `json:"-" bson:"password"`
	Phone     string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Address   Address `json:"address,omitempty" bson:"address,omitempty"`
	DOB       string  `json:"dob,omitempty" bson:"dob,omitempty"`
	Gender    string  `json:"gender,omitempty" bson:"gender,omitempty"`
	Image     string  `json:"image,omitempty" bson:"image,omitempty"`
	TimeModel `bson:",inline"`
}

// Snapshot returns the user as embedded in an appointment at booking time,
// without the credential.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
		DOB:     u.DOB,
		Gender:  u.Gender,
		Image:   u.Image,
	}
}

type UserSnapshot struct {
	ID      string  `json:"_id" bson:"_id"`
	Name    string  `json:"name" bson:"name"`
	Email   string  `json:"email" bson:"email"`
	Phone   string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Address Address `json:"address,omitempty" bson:"address,omitempty"`
	DOB     string  `json:"dob,omitempty" bson:"dob,omitempty"`
	Gender  string  `json:"gender,omitempty" bson:"gender,omitempty"`
	Image   string  `json:"image,omitempty" bson:"image,omitempty"`
}
