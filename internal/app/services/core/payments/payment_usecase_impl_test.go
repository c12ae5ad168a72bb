package payments

import (
	"context"
	"testing"

	"predictacare-service/internal/app/config"
	"predictacare-service/internal/app/models"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/dto/responses"
	"predictacare-service/internal/pkg/exceptions"
	"predictacare-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDocID(ctx context.Context, docID string) ([]models.Appointment, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindLatest(ctx context.Context, limit int64) ([]models.Appointment, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) MarkCancelled(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentRepository) MarkCompleted(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentRepository) MarkPaid(ctx context.Context, appointmentID string, info *models.PaymentInfo) error {
	args := m.Called(ctx, appointmentID, info)
	return args.Error(0)
}

func (m *MockAppointmentRepository) CountAppointments(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*responses.PaymentOrder, error) {
	args := m.Called(ctx, amountPaise, currency, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PaymentOrder), args.Error(1)
}

func (m *MockPaymentGateway) FetchOrder(ctx context.Context, orderID string) (*responses.PaymentOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PaymentOrder), args.Error(1)
}

type MockWebhookQueue struct {
	mock.Mock
}

func (m *MockWebhookQueue) Publish(ctx context.Context, body []byte) error {
	args := m.Called(ctx, body)
	return args.Error(0)
}

func (m *MockWebhookQueue) Consume(ctx context.Context, handler func(ctx context.Context, body []byte) error) error {
	args := m.Called(ctx, handler)
	return args.Error(0)
}

func (m *MockWebhookQueue) Close() error {
	args := m.Called()
	return args.Error(0)
}

const (
	testKeySecret     = "test-key-secret"
	testWebhookSecret = "test-webhook-secret"
)

func newTestPaymentUsecase() (*paymentUsecase, *MockAppointmentRepository, *MockPaymentGateway, *MockWebhookQueue) {
	appointmentRepo := new(MockAppointmentRepository)
	gateway := new(MockPaymentGateway)
	queue := new(MockWebhookQueue)

	uc := &paymentUsecase{
		AppointmentRepository: appointmentRepo,
		PaymentGateway:        gateway,
		WebhookQueue:          queue,
		InternalConfig: &config.InternalConfig{
			Razorpay: config.Razorpay{
				KeyID:         "rzp_test_key",
				KeySecret:     testKeySecret,
				WebhookSecret: testWebhookSecret,
				Currency:      "INR",
			},
		},
		Log: zap.NewNop(),
	}
	return uc, appointmentRepo, gateway, queue
}

func TestPaymentUsecase_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Amount Converted To Paise And Receipt Set", func(t *testing.T) {
		uc, appointmentRepo, gateway, _ := newTestPaymentUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{
			ID:     "appt-1",
			UserID: "user-1",
			Amount: 500,
		}, nil)
		gateway.On("CreateOrder", mock.Anything, int64(50000), "INR", "appt-1").Return(&responses.PaymentOrder{
			OrderID:  "order_123",
			Amount:   50000,
			Currency: "INR",
			Receipt:  "appt-1",
			Status:   "created",
		}, nil)

		order, err := uc.CreateOrder(ctx, "user-1", "appt-1")

		assert.NoError(t, err)
		assert.Equal(t, "order_123", order.OrderID)
		gateway.AssertCalled(t, "CreateOrder", mock.Anything, int64(50000), "INR", "appt-1")
	})

	t.Run("Fractional Fee Rounds To Nearest Paisa", func(t *testing.T) {
		uc, appointmentRepo, gateway, _ := newTestPaymentUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{
			ID:     "appt-1",
			UserID: "user-1",
			Amount: 499.99,
		}, nil)
		gateway.On("CreateOrder", mock.Anything, int64(49999), "INR", "appt-1").Return(&responses.PaymentOrder{
			OrderID:  "order_456",
			Amount:   49999,
			Currency: "INR",
			Receipt:  "appt-1",
			Status:   "created",
		}, nil)

		order, err := uc.CreateOrder(ctx, "user-1", "appt-1")

		assert.NoError(t, err)
		assert.Equal(t, "order_456", order.OrderID)
		gateway.AssertCalled(t, "CreateOrder", mock.Anything, int64(49999), "INR", "appt-1")
	})

	t.Run("Cancelled Appointment Rejected", func(t *testing.T) {
		uc, appointmentRepo, gateway, _ := newTestPaymentUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{
			ID:        "appt-1",
			UserID:    "user-1",
			Cancelled: true,
		}, nil)

		_, err := uc.CreateOrder(ctx, "user-1", "appt-1")

		assert.Error(t, err)
		gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already Paid Appointment Rejected", func(t *testing.T) {
		uc, appointmentRepo, gateway, _ := newTestPaymentUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{
			ID:      "appt-1",
			UserID:  "user-1",
			Payment: true,
		}, nil)

		_, err := uc.CreateOrder(ctx, "user-1", "appt-1")

		assert.Error(t, err)
		gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPaymentUsecase_VerifyCheckout(t *testing.T) {
	ctx := context.Background()

	signatureFor := func(orderID, paymentID string) string {
		return utils.ComputeHMACSHA256([]byte(orderID+"|"+paymentID), testKeySecret)
	}

	t.Run("Valid Signature Marks Appointment Paid", func(t *testing.T) {
		uc, appointmentRepo, gateway, _ := newTestPaymentUsecase()

		request := &requests.VerifyPayment{
			RazorpayOrderID:   "order_123",
			RazorpayPaymentID: "pay_456",
			RazorpaySignature: signatureFor("order_123", "pay_456"),
		}
		gateway.On("FetchOrder", mock.Anything, "order_123").Return(&responses.PaymentOrder{
			OrderID:  "order_123",
			Amount:   50000,
			Currency: "INR",
			Receipt:  "appt-1",
		}, nil)
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{
			ID:     "appt-1",
			UserID: "user-1",
		}, nil)
		appointmentRepo.On("MarkPaid", mock.Anything, "appt-1", mock.AnythingOfType("*models.PaymentInfo")).Return(nil)

		err := uc.VerifyCheckout(ctx, "user-1", request)

		assert.NoError(t, err)
		appointmentRepo.AssertCalled(t, "MarkPaid", mock.Anything, "appt-1", mock.MatchedBy(func(info *models.PaymentInfo) bool {
			return info.OrderID == "order_123" && info.PaymentID == "pay_456" && info.Source == constvars.PaymentSourceClient
		}))
	})

	t.Run("Tampered Signature Rejected", func(t *testing.T) {
		uc, appointmentRepo, gateway, _ := newTestPaymentUsecase()

		request := &requests.VerifyPayment{
			RazorpayOrderID:   "order_123",
			RazorpayPaymentID: "pay_456",
			RazorpaySignature: signatureFor("order_123", "pay_999"),
		}

		err := uc.VerifyCheckout(ctx, "user-1", request)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.ErrPaymentSignatureMismatch(nil).ClientMessage, customErr.ClientMessage)
		gateway.AssertNotCalled(t, "FetchOrder", mock.Anything, mock.Anything)
		appointmentRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Order Without Receipt Rejected", func(t *testing.T) {
		uc, appointmentRepo, gateway, _ := newTestPaymentUsecase()

		request := &requests.VerifyPayment{
			RazorpayOrderID:   "order_123",
			RazorpayPaymentID: "pay_456",
			RazorpaySignature: signatureFor("order_123", "pay_456"),
		}
		gateway.On("FetchOrder", mock.Anything, "order_123").Return(&responses.PaymentOrder{
			OrderID: "order_123",
		}, nil)

		err := uc.VerifyCheckout(ctx, "user-1", request)

		assert.Error(t, err)
		appointmentRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPaymentUsecase_HandleWebhook(t *testing.T) {
	ctx := context.Background()
	rawBody := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_456","order_id":"order_123"}}}}`)

	t.Run("Verified Payload Is Queued", func(t *testing.T) {
		uc, _, _, queue := newTestPaymentUsecase()

		queue.On("Publish", mock.Anything, rawBody).Return(nil)

		err := uc.HandleWebhook(ctx, rawBody, utils.ComputeHMACSHA256(rawBody, testWebhookSecret))

		assert.NoError(t, err)
		queue.AssertCalled(t, "Publish", mock.Anything, rawBody)
	})

	t.Run("Bad Signature Publishes Nothing", func(t *testing.T) {
		uc, _, _, queue := newTestPaymentUsecase()

		err := uc.HandleWebhook(ctx, rawBody, utils.ComputeHMACSHA256(rawBody, "wrong-secret"))

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.ErrWebhookSignatureMismatch(nil).ClientMessage, customErr.ClientMessage)
		queue.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Missing Signature Publishes Nothing", func(t *testing.T) {
		uc, _, _, queue := newTestPaymentUsecase()

		err := uc.HandleWebhook(ctx, rawBody, "")

		assert.Error(t, err)
		queue.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestPaymentUsecase_ProcessWebhookEvent(t *testing.T) {
	ctx := context.Background()

	capturedEvent := func() *requests.WebhookEvent {
		event := new(requests.WebhookEvent)
		event.Event = constvars.RazorpayEventPaymentCaptured
		event.Payload.Payment.Entity.ID = "pay_456"
		event.Payload.Payment.Entity.OrderID = "order_123"
		return event
	}

	t.Run("Captured Event Reconciles Appointment", func(t *testing.T) {
		uc, appointmentRepo, gateway, _ := newTestPaymentUsecase()

		gateway.On("FetchOrder", mock.Anything, "order_123").Return(&responses.PaymentOrder{
			OrderID:  "order_123",
			Amount:   50000,
			Currency: "INR",
			Receipt:  "appt-1",
		}, nil)
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{
			ID:     "appt-1",
			UserID: "user-1",
		}, nil)
		appointmentRepo.On("MarkPaid", mock.Anything, "appt-1", mock.AnythingOfType("*models.PaymentInfo")).Return(nil)

		err := uc.ProcessWebhookEvent(ctx, capturedEvent())

		assert.NoError(t, err)
		appointmentRepo.AssertCalled(t, "MarkPaid", mock.Anything, "appt-1", mock.MatchedBy(func(info *models.PaymentInfo) bool {
			return info.Source == constvars.PaymentSourceWebhook && info.Status == constvars.RazorpayEventPaymentCaptured
		}))
	})

	t.Run("Unhandled Event Skipped", func(t *testing.T) {
		uc, appointmentRepo, gateway, _ := newTestPaymentUsecase()

		event := capturedEvent()
		event.Event = "refund.processed"

		err := uc.ProcessWebhookEvent(ctx, event)

		assert.NoError(t, err)
		gateway.AssertNotCalled(t, "FetchOrder", mock.Anything, mock.Anything)
		appointmentRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Redelivery Of Paid Appointment Overwrites Payment Info", func(t *testing.T) {
		uc, appointmentRepo, gateway, _ := newTestPaymentUsecase()

		gateway.On("FetchOrder", mock.Anything, "order_123").Return(&responses.PaymentOrder{
			OrderID: "order_123",
			Receipt: "appt-1",
		}, nil)
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{
			ID:      "appt-1",
			Payment: true,
		}, nil)
		appointmentRepo.On("MarkPaid", mock.Anything, "appt-1", mock.MatchedBy(func(info *models.PaymentInfo) bool {
			return info.Source == constvars.PaymentSourceWebhook && info.OrderID == "order_123"
		})).Return(nil)

		err := uc.ProcessWebhookEvent(ctx, capturedEvent())

		assert.NoError(t, err)
		appointmentRepo.AssertCalled(t, "MarkPaid", mock.Anything, "appt-1", mock.Anything)
	})
}
