package requests

type BookAppointment struct {
	DocID    string `json:"docId" validate:"required"`
	SlotDate string `json:"slotDate" validate:"required"`
	SlotTime string `json:"slotTime" validate:"required"`
}

type CancelAppointment struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}

type CompleteAppointment struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}
