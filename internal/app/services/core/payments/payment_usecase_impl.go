package payments

import (
	"context"
	"math"
	"predictacare-service/internal/app/config"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/app/models"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/dto/responses"
	"predictacare-service/internal/pkg/exceptions"
	"predictacare-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PaymentGateway        contracts.PaymentGatewayService
	WebhookQueue          contracts.WebhookQueueService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPaymentUsecase(
	appointmentMongoRepository contracts.AppointmentRepository,
	paymentGateway contracts.PaymentGatewayService,
	webhookQueue contracts.WebhookQueueService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			AppointmentRepository: appointmentMongoRepository,
			PaymentGateway:        paymentGateway,
			WebhookQueue:          webhookQueue,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreateOrder(ctx context.Context, userID, appointmentID string) (*responses.PaymentOrder, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.Cancelled {
		return nil, exceptions.ErrAppointmentCancelledOrMissing(nil)
	}
	if appointment.UserID != userID {
		return nil, exceptions.ErrUnauthorizedAction(nil)
	}
	if appointment.Payment {
		return nil, exceptions.ErrAppointmentAlreadyPaid(nil)
	}

	// The gateway works in the currency's smallest unit; the order receipt
	// carries the appointment id so the webhook path can find its way back.
	amountPaise := int64(math.Round(appointment.Amount * 100))
	currency := uc.InternalConfig.Razorpay.Currency
	if currency == "" {
		currency = constvars.DefaultPaymentCurrency
	}

	return uc.PaymentGateway.CreateOrder(ctx, amountPaise, currency, appointment.ID)
}

func (uc *paymentUsecase) VerifyCheckout(ctx context.Context, userID string, request *requests.VerifyPayment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	signedPayload := []byte(request.RazorpayOrderID + "|" + request.RazorpayPaymentID)
	if !utils.VerifyHMACSHA256(signedPayload, uc.InternalConfig.Razorpay.KeySecret, request.RazorpaySignature) {
		utils.LogSecurityEvent(uc.Log, "checkout signature rejected", requestID, "high",
			zap.String(constvars.LoggingOrderIDKey, request.RazorpayOrderID),
		)
		return exceptions.ErrPaymentSignatureMismatch(nil)
	}

	order, err := uc.PaymentGateway.FetchOrder(ctx, request.RazorpayOrderID)
	if err != nil {
		return err
	}
	if order.Receipt == "" {
		return exceptions.ErrOrderReceiptMissing(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, order.Receipt)
	if err != nil {
		return err
	}
	if appointment == nil || appointment.Cancelled {
		return exceptions.ErrAppointmentCancelledOrMissing(nil)
	}
	if appointment.UserID != userID {
		return exceptions.ErrUnauthorizedAction(nil)
	}

	info := &models.PaymentInfo{
		OrderID:   request.RazorpayOrderID,
		PaymentID: request.RazorpayPaymentID,
		Signature: request.RazorpaySignature,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Status:    constvars.RazorpayPaymentStatusClientVerified,
		Source:    constvars.PaymentSourceClient,
		CreatedAt: time.Now(),
	}

	if err := uc.markPaid(ctx, appointment, info); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, "payment verified via checkout", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingOrderIDKey, request.RazorpayOrderID),
	)
	return nil
}

// HandleWebhook verifies the gateway signature over the raw body and parks
// the event on the queue. Processing happens in the worker so the gateway
// gets its 200 quickly.
func (uc *paymentUsecase) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	if signature == "" || !utils.VerifyHMACSHA256(rawBody, uc.InternalConfig.Razorpay.WebhookSecret, signature) {
		utils.LogSecurityEvent(uc.Log, "webhook signature rejected", utils.GetRequestID(ctx), "high")
		return exceptions.ErrWebhookSignatureMismatch(nil)
	}

	if _, err := requests.ParseWebhookEvent(rawBody); err != nil {
		return exceptions.ErrWebhookPayloadMalformed(err)
	}

	return uc.WebhookQueue.Publish(ctx, rawBody)
}

func (uc *paymentUsecase) ProcessWebhookEvent(ctx context.Context, event *requests.WebhookEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	switch event.Event {
	case constvars.RazorpayEventPaymentCaptured, constvars.RazorpayEventPaymentAuthorized:
	default:
		uc.Log.Info("paymentUsecase.ProcessWebhookEvent skipping event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWebhookEventKey, event.Event),
		)
		return nil
	}

	orderID := event.Payload.Payment.Entity.OrderID
	if orderID == "" {
		return exceptions.ErrWebhookPayloadMalformed(nil)
	}

	order, err := uc.PaymentGateway.FetchOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Receipt == "" {
		return exceptions.ErrOrderReceiptMissing(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, order.Receipt)
	if err != nil {
		return err
	}
	if appointment == nil || appointment.Cancelled {
		return exceptions.ErrAppointmentCancelledOrMissing(nil)
	}

	info := &models.PaymentInfo{
		OrderID:   orderID,
		PaymentID: event.Payload.Payment.Entity.ID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Status:    event.Event,
		Source:    constvars.PaymentSourceWebhook,
		CreatedAt: time.Now(),
	}

	if err := uc.markPaid(ctx, appointment, info); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, "payment reconciled via webhook", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingWebhookEventKey, event.Event),
	)
	return nil
}

// markPaid is idempotent in effect: payment stays true no matter how often
// the checkout and webhook paths land, and paymentInfo reflects whichever
// confirmation arrived last.
func (uc *paymentUsecase) markPaid(ctx context.Context, appointment *models.Appointment, info *models.PaymentInfo) error {
	return uc.AppointmentRepository.MarkPaid(ctx, appointment.ID, info)
}
