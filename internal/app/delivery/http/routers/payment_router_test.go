package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"predictacare-service/internal/app/config"
	"predictacare-service/internal/app/delivery/http/controllers"
	"predictacare-service/internal/app/delivery/http/middlewares"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/dto/responses"
	"predictacare-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPaymentUsecase struct {
	mock.Mock
}

func (m *MockPaymentUsecase) CreateOrder(ctx context.Context, userID, appointmentID string) (*responses.PaymentOrder, error) {
	args := m.Called(ctx, userID, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PaymentOrder), args.Error(1)
}

func (m *MockPaymentUsecase) VerifyCheckout(ctx context.Context, userID string, request *requests.VerifyPayment) error {
	args := m.Called(ctx, userID, request)
	return args.Error(0)
}

func (m *MockPaymentUsecase) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	args := m.Called(ctx, rawBody, signature)
	return args.Error(0)
}

func (m *MockPaymentUsecase) ProcessWebhookEvent(ctx context.Context, event *requests.WebhookEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func TestPaymentRouter_WebhookEndpoint(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			RequestBodyLimitInMegabyte: 1,
		},
	}

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	webhookBody := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`)

	t.Run("Accepted Webhook Returns 200", func(t *testing.T) {
		mockPaymentUsecase := new(MockPaymentUsecase)
		paymentController := controllers.NewPaymentController(logger, mockPaymentUsecase)

		router := chi.NewRouter()
		attachWebhookRoutes(router, middlewareInstance, paymentController)

		mockPaymentUsecase.On("HandleWebhook", mock.Anything, webhookBody, "valid-signature").Return(nil)

		req := httptest.NewRequest("POST", "/webhook", bytes.NewReader(webhookBody))
		req.Header.Set(constvars.HeaderRazorpaySignature, "valid-signature")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockPaymentUsecase.AssertCalled(t, "HandleWebhook", mock.Anything, webhookBody, "valid-signature")
	})

	t.Run("Signature Mismatch Returns 400", func(t *testing.T) {
		mockPaymentUsecase := new(MockPaymentUsecase)
		paymentController := controllers.NewPaymentController(logger, mockPaymentUsecase)

		router := chi.NewRouter()
		attachWebhookRoutes(router, middlewareInstance, paymentController)

		mockPaymentUsecase.On("HandleWebhook", mock.Anything, webhookBody, "forged-signature").
			Return(exceptions.ErrWebhookSignatureMismatch(nil))

		req := httptest.NewRequest("POST", "/webhook", bytes.NewReader(webhookBody))
		req.Header.Set(constvars.HeaderRazorpaySignature, "forged-signature")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Raw Bytes Reach The Usecase Untouched", func(t *testing.T) {
		mockPaymentUsecase := new(MockPaymentUsecase)
		paymentController := controllers.NewPaymentController(logger, mockPaymentUsecase)

		router := chi.NewRouter()
		attachWebhookRoutes(router, middlewareInstance, paymentController)

		// Whitespace would change the HMAC, so the body must arrive verbatim.
		oddBody := []byte(`{"event": "payment.captured",   "payload": {"payment": {"entity": {"id": "pay_1", "order_id": "order_1"}}}}`)
		mockPaymentUsecase.On("HandleWebhook", mock.Anything, oddBody, "sig").Return(nil)

		req := httptest.NewRequest("POST", "/webhook", bytes.NewReader(oddBody))
		req.Header.Set(constvars.HeaderRazorpaySignature, "sig")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockPaymentUsecase.AssertCalled(t, "HandleWebhook", mock.Anything, oddBody, "sig")
	})
}
