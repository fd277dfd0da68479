package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"vaccine-tracker/internal/domain/reminders"

	"github.com/aws/aws-sdk-go-v2/config"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type sender interface {
	SendMessage(ctx context.Context, in *awssqs.SendMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error)
}

// Notifier encola cada notificación en una cola SQS.
type Notifier struct {
	client   sender
	queueURL string
}

// New carga la config AWS por defecto (env, shared config, AWS_ENDPOINT_URL
// para localstack) y arma el cliente SQS.
func New(ctx context.Context, queueURL string) (*Notifier, error) {
	if strings.TrimSpace(queueURL) == "" {
		return nil, errors.New("sqs: queue url required")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqs: load aws config: %w", err)
	}

	client := awssqs.New(awssqs.Options{
		Region:       cfg.Region,
		Credentials:  cfg.Credentials,
		HTTPClient:   cfg.HTTPClient,
		BaseEndpoint: cfg.BaseEndpoint,
	})

	return &Notifier{client: client, queueURL: queueURL}, nil
}

func (n *Notifier) Notify(ctx context.Context, nt reminders.Notification) error {
	payload, err := json.Marshal(nt)
	if err != nil {
		return fmt.Errorf("sqs: marshal notification: %w", err)
	}

	body := string(payload)
	event := "reminder.fired"
	dataType := "String"

	_, err = n.client.SendMessage(ctx, &awssqs.SendMessageInput{
		QueueUrl:    &n.queueURL,
		MessageBody: &body,
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event": {DataType: &dataType, StringValue: &event},
		},
	})
	if err != nil {
		return fmt.Errorf("sqs: send message: %w", err)
	}
	return nil
}
