package responses

type ChatReply struct {
	Reply string `json:"reply"`
}
