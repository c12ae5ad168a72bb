package webhookqueue

import (
	"context"
	"fmt"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/exceptions"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const DeadLetterSuffix = "_dlq"

// Service stores verified gateway events in a durable RabbitMQ queue so the
// webhook endpoint can acknowledge quickly. Deliveries that keep failing are
// parked in a dead-letter queue.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	dlqName   string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewService declares the durable queues, enables publisher confirms, and sets QoS.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string, prefetch int) (contracts.WebhookQueueService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	dlqName := queueName + DeadLetterSuffix

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		dlqName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		dlqName:   dlqName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// Publish sends the raw event body to the standard queue with persistence and
// waits for the broker confirm.
func (s *Service) Publish(ctx context.Context, body []byte) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("WebhookQueue.Publish called", zap.String(constvars.LoggingRequestIDKey, requestID))

	return s.publishRaw(ctx, s.queueName, body)
}

// Consume delivers queued events to handler. A handler error requeues the
// delivery once; a redelivered failure is parked in the DLQ.
func (s *Service) Consume(ctx context.Context, handler func(ctx context.Context, body []byte) error) error {
	deliveries, err := s.ch.Consume(
		s.queueName,
		"",    // consumer
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return exceptions.ErrQueueConsume(err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				s.handleDelivery(ctx, d, handler)
			}
		}
	}()

	return nil
}

func (s *Service) handleDelivery(ctx context.Context, d amqp.Delivery, handler func(ctx context.Context, body []byte) error) {
	err := handler(ctx, d.Body)
	if err == nil {
		if ackErr := d.Ack(false); ackErr != nil {
			s.log.Error("WebhookQueue ack failed", zap.Error(ackErr))
		}
		return
	}

	s.log.Error("WebhookQueue handler failed",
		zap.Bool("redelivered", d.Redelivered),
		zap.Error(err),
	)

	if !d.Redelivered {
		if nackErr := d.Nack(false, true); nackErr != nil {
			s.log.Error("WebhookQueue nack failed", zap.Error(nackErr))
		}
		return
	}

	// Second failure, park the message so it does not poison the queue.
	if ackErr := d.Ack(false); ackErr != nil {
		s.log.Error("WebhookQueue ack failed", zap.Error(ackErr))
		return
	}
	if dlqErr := s.publishRaw(ctx, s.dlqName, d.Body); dlqErr != nil {
		s.log.Error("WebhookQueue dead-letter publish failed", zap.Error(dlqErr))
	}
}

func (s *Service) Close() error {
	return s.ch.Close()
}

func (s *Service) publishRaw(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueuePublish(fmt.Errorf("message not confirmed by broker"))
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err())
	}
	return nil
}
