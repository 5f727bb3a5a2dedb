package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func testRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		ID:        42,
		Reference: uuid.MustParse("4f8e3f5a-8c1d-4a61-9a5e-2f0f7f0a1b2c"),
		Date:      civil.Date{Year: 2025, Month: 7, Day: 2},
		Time:      "10:00",
		Timezone:  "Europe/Moscow",
		Name:      "Anna",
		Email:     "anna@example.com",
		Status:    domain.StatusNew,
	}
}

func TestPublisher_PublishCreated(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisher(w)
	p.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, p.PublishCreated(context.Background(), testRequest()))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "4f8e3f5a-8c1d-4a61-9a5e-2f0f7f0a1b2c", string(msg.Key))
	assert.Equal(t, EventBookingRequestCreated, headerValue(msg, "event_type"))
	assert.NotEmpty(t, headerValue(msg, "event_id"))

	var decoded struct {
		ID         string                `json:"id"`
		Type       string                `json:"type"`
		OccurredAt time.Time             `json:"occurredAt"`
		Payload    BookingRequestPayload `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, headerValue(msg, "event_id"), decoded.ID)
	assert.Equal(t, EventBookingRequestCreated, decoded.Type)
	assert.Equal(t, "2025-07-02", decoded.Payload.Date)
	assert.Equal(t, "new", decoded.Payload.Status)
	assert.Empty(t, decoded.Payload.PreviousStatus)
}

func TestPublisher_PublishStatusChanged(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisher(w)

	req := testRequest()
	req.Status = domain.StatusConfirmed
	require.NoError(t, p.PublishStatusChanged(context.Background(), req, domain.StatusNew))

	require.Len(t, w.messages, 1)
	var decoded struct {
		Payload BookingRequestPayload `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &decoded))
	assert.Equal(t, "confirmed", decoded.Payload.Status)
	assert.Equal(t, "new", decoded.Payload.PreviousStatus)
	assert.Equal(t, EventBookingRequestStatusChanged, headerValue(w.messages[0], "event_type"))
}

func TestPublisher_WriteError(t *testing.T) {
	p := NewPublisher(&fakeWriter{err: errors.New("broker down")})

	err := p.PublishCreated(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrPublish)
}

func TestPublisher_Close(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, NewPublisher(w).Close())
	assert.True(t, w.closed)
}
