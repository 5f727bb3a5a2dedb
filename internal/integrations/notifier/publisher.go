package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// MessageWriter интерфейс писателя Kafka (*kafka.Writer)
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher публикует события по заявкам в Kafka
type Publisher struct {
	writer MessageWriter
	now    func() time.Time
}

// NewKafkaPublisher создает издателя с *kafka.Writer
// Ключ сообщения - reference заявки, поэтому события одной заявки попадают в одну партицию
func NewKafkaPublisher(brokers []string, topic string) *Publisher {
	return NewPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  3,
		WriteTimeout: 2 * time.Second,
	})
}

// NewPublisher создает издателя поверх произвольного писателя
func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer, now: time.Now}
}

// PublishCreated публикует событие создания заявки
func (p *Publisher) PublishCreated(ctx context.Context, req *domain.BookingRequest) error {
	return p.publish(ctx, EventBookingRequestCreated, req.Reference.String(), newBookingRequestPayload(req))
}

// PublishStatusChanged публикует событие смены статуса заявки
func (p *Publisher) PublishStatusChanged(ctx context.Context, req *domain.BookingRequest, previous domain.BookingRequestStatus) error {
	payload := newBookingRequestPayload(req)
	payload.PreviousStatus = string(previous)
	return p.publish(ctx, EventBookingRequestStatusChanged, req.Reference.String(), payload)
}

// Close закрывает писателя
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) publish(ctx context.Context, eventType, key string, payload interface{}) error {
	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: p.now().UTC(),
		Payload:    payload,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: type=%s: %v", ErrPublish, eventType, err)
	}

	return nil
}

// Nop издатель, который ничего не публикует (Kafka выключена)
type Nop struct{}

func (Nop) PublishCreated(context.Context, *domain.BookingRequest) error { return nil }

func (Nop) PublishStatusChanged(context.Context, *domain.BookingRequest, domain.BookingRequestStatus) error {
	return nil
}
