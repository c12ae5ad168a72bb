package requests

type ChatMessage struct {
	Message string `json:"message" validate:"required"`
}
