package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"vaccine-tracker/internal/domain/reminders"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendMessage(ctx context.Context, in *awssqs.SendMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*awssqs.SendMessageOutput)
	return out, args.Error(1)
}

func TestNotify_SendsJSONBody(t *testing.T) {
	ms := &mockSender{}
	n := &Notifier{client: ms, queueURL: "http://localhost:4566/000000000000/reminders"}

	ms.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *awssqs.SendMessageInput) bool {
		if in.QueueUrl == nil || *in.QueueUrl != n.queueURL || in.MessageBody == nil {
			return false
		}
		var got reminders.Notification
		if err := json.Unmarshal([]byte(*in.MessageBody), &got); err != nil {
			return false
		}
		return got.ReminderID == "r-1" && *in.MessageAttributes["event"].StringValue == "reminder.fired"
	})).Return(&awssqs.SendMessageOutput{}, nil).Once()

	require.NoError(t, n.Notify(context.Background(), reminders.Notification{ReminderID: "r-1"}))
	ms.AssertExpectations(t)
}

func TestNotify_WrapsSendError(t *testing.T) {
	boom := errors.New("throttled")
	ms := &mockSender{}
	ms.On("SendMessage", mock.Anything, mock.Anything).Return(nil, boom)

	n := &Notifier{client: ms, queueURL: "q"}
	err := n.Notify(context.Background(), reminders.Notification{ReminderID: "r-1"})
	assert.ErrorIs(t, err, boom)
}

func TestNew_RequiresQueueURL(t *testing.T) {
	_, err := New(context.Background(), " ")
	assert.Error(t, err)
}
