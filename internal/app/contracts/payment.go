package contracts

import (
	"context"

	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*responses.PaymentOrder, error)
	FetchOrder(ctx context.Context, orderID string) (*responses.PaymentOrder, error)
}

type PaymentUsecase interface {
	CreateOrder(ctx context.Context, userID, appointmentID string) (*responses.PaymentOrder, error)
	VerifyCheckout(ctx context.Context, userID string, request *requests.VerifyPayment) error
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) error
	ProcessWebhookEvent(ctx context.Context, event *requests.WebhookEvent) error
}
