package responses

// PaymentOrder is the provider order handle returned to the SPA so it can
// open the checkout UI.
type PaymentOrder struct {
	OrderID  string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}
