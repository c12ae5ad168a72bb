package requests

// UploadedImage carries a multipart image part already read into memory.
type UploadedImage struct {
	Data        []byte
	Filename    string
	ContentType string
	Size        int64
}

type UpdateProfile struct {
	Name    string         `json:"name" validate:"required"`
	Phone   string         `json:"phone" validate:"required"`
	Address AddressPayload `json:"address"`
	DOB     string         `json:"dob" validate:"required"`
	Gender  string         `json:"gender" validate:"required"`
	Image   *UploadedImage `json:"-"`
}

type AddressPayload struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}
