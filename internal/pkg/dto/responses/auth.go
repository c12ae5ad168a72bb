package responses

type AuthToken struct {
	Token string `json:"token"`
}
