package requests

import "github.com/goccy/go-json"

type CreatePaymentOrder struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}

type VerifyPayment struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

// WebhookEvent mirrors the subset of the Razorpay webhook payload the
// reconciler needs.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

func ParseWebhookEvent(raw []byte) (*WebhookEvent, error) {
	event := new(WebhookEvent)
	if err := json.Unmarshal(raw, event); err != nil {
		return nil, err
	}
	return event, nil
}
