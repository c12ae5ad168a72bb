package payments

import (
	"context"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

// Worker drains the webhook queue and applies each verified event with
// at-least-once semantics. Reconciliation is idempotent so redeliveries
// are harmless.
type Worker struct {
	log     *zap.Logger
	queue   contracts.WebhookQueueService
	usecase contracts.PaymentUsecase
	cancel  context.CancelFunc
}

func NewWorker(log *zap.Logger, queue contracts.WebhookQueueService, usecase contracts.PaymentUsecase) *Worker {
	return &Worker{
		log:     log,
		queue:   queue,
		usecase: usecase,
	}
}

// Start registers the consumer. It returns a stop function that halts
// delivery handling.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	err = w.queue.Consume(workerCtx, w.handle)
	if err != nil {
		cancel()
		return nil, err
	}

	w.log.Info("payment webhook worker started")
	return func() {
		w.cancel()
	}, nil
}

func (w *Worker) handle(ctx context.Context, body []byte) error {
	event, err := requests.ParseWebhookEvent(body)
	if err != nil {
		// Malformed payloads were already screened at the endpoint, a decode
		// failure here means the message is poison. Drop it to the DLQ path.
		w.log.Error("payment webhook worker cannot decode event", zap.Error(err))
		return err
	}

	w.log.Info("payment webhook worker processing event",
		zap.String(constvars.LoggingWebhookEventKey, event.Event),
		zap.String(constvars.LoggingOrderIDKey, event.Payload.Payment.Entity.OrderID),
	)

	return w.usecase.ProcessWebhookEvent(ctx, event)
}
