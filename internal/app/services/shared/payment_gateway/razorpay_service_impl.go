package payment_gateway

import (
	"context"
	"fmt"
	"predictacare-service/internal/app/config"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/responses"
	"predictacare-service/internal/pkg/exceptions"
	"sync"

	"github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

var (
	razorpayServiceInstance contracts.PaymentGatewayService
	onceRazorpayService     sync.Once
)

type razorpayService struct {
	client *razorpay.Client
	cfg    *config.InternalConfig
	Log    *zap.Logger
}

func NewRazorpayService(cfg *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceRazorpayService.Do(func() {
		instance := &razorpayService{
			client: razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret),
			cfg:    cfg,
			Log:    logger,
		}
		razorpayServiceInstance = instance
	})
	return razorpayServiceInstance
}

func (s *razorpayService) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*responses.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("razorpayService.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("amount_paise", amountPaise),
	)

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := s.client.Order.Create(data, nil)
	if err != nil {
		s.Log.Error("razorpayService.CreateOrder error calling provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentOrderCreate(err)
	}

	order, err := orderFromResponse(body)
	if err != nil {
		return nil, exceptions.ErrPaymentOrderCreate(err)
	}

	s.Log.Info("razorpayService.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, order.OrderID),
	)
	return order, nil
}

func (s *razorpayService) FetchOrder(ctx context.Context, orderID string) (*responses.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("razorpayService.FetchOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	body, err := s.client.Order.Fetch(orderID, nil, nil)
	if err != nil {
		s.Log.Error("razorpayService.FetchOrder error calling provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentOrderFetch(err)
	}

	order, err := orderFromResponse(body)
	if err != nil {
		return nil, exceptions.ErrPaymentOrderFetch(err)
	}
	return order, nil
}

// orderFromResponse maps the provider's loosely typed body onto PaymentOrder.
// Amounts come back as json.Number-ish float64 values.
func orderFromResponse(body map[string]interface{}) (*responses.PaymentOrder, error) {
	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("provider response carries no order id")
	}

	order := &responses.PaymentOrder{OrderID: orderID}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if currency, ok := body["currency"].(string); ok {
		order.Currency = currency
	}
	if receipt, ok := body["receipt"].(string); ok {
		order.Receipt = receipt
	}
	if status, ok := body["status"].(string); ok {
		order.Status = status
	}
	return order, nil
}
