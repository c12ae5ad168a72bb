package constvars

const (
	RazorpayEventPaymentCaptured   = "payment.captured"
	RazorpayEventPaymentAuthorized = "payment.authorized"

	RazorpayPaymentStatusClientVerified = "captured_or_authorized"

	PaymentSourceClient  = "client"
	PaymentSourceWebhook = "webhook"

	DefaultPaymentCurrency = "INR"
)
