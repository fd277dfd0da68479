package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"vaccine-tracker/internal/domain/reminders"

	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter es lo que usamos de *kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Notifier publica cada notificación en un topic. La key es el subject_id,
// así las notificaciones de un mismo sujeto caen en la misma partición.
type Notifier struct {
	w messageWriter
}

func New(brokers []string, topic string) (*Notifier, error) {
	addrs := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	if len(addrs) == 0 {
		return nil, errors.New("kafka: at least one broker required")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errors.New("kafka: topic required")
	}

	return &Notifier{w: &kafkago.Writer{
		Addr:                   kafkago.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}}, nil
}

func (n *Notifier) Notify(ctx context.Context, nt reminders.Notification) error {
	payload, err := json.Marshal(nt)
	if err != nil {
		return fmt.Errorf("kafka: marshal notification: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(nt.SubjectID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event", Value: []byte("reminder.fired")},
		},
	}
	if err := n.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write message: %w", err)
	}
	return nil
}

func (n *Notifier) Close() error {
	return n.w.Close()
}
