package logsink

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"vaccine-tracker/internal/domain/reminders"
	"vaccine-tracker/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Level: logger.Info, Format: logger.FormatJSON, Out: &buf})

	err := New(l).Notify(context.Background(), reminders.Notification{
		ReminderID: "r-1",
		DoseID:     "d-1",
		SubjectID:  "s-1",
		Message:    "MMR-1 is due on 2025-10-01",
		FireAt:     time.Date(2025, 9, 30, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "reminder notification", line["message"])
	assert.Equal(t, "r-1", line["reminder_id"])
	assert.Equal(t, "MMR-1 is due on 2025-10-01", line["text"])
	assert.Equal(t, "2025-09-30T09:00:00Z", line["fire_at"])
}
