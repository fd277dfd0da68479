package logsink

import (
	"context"
	"time"

	"vaccine-tracker/internal/domain/reminders"
	"vaccine-tracker/internal/platform/logger"
)

// Notifier escribe cada notificación en el log estructurado.
// Es el sink por defecto cuando no hay webhook, kafka ni sqs configurados.
type Notifier struct {
	log logger.Logger
}

func New(l logger.Logger) *Notifier {
	if l == nil {
		l = logger.Nop()
	}
	return &Notifier{log: l}
}

func (n *Notifier) Notify(ctx context.Context, nt reminders.Notification) error {
	n.log.Info("reminder notification", map[string]any{
		"reminder_id": nt.ReminderID,
		"dose_id":     nt.DoseID,
		"subject_id":  nt.SubjectID,
		"text":        nt.Message,
		"fire_at":     nt.FireAt.Format(time.RFC3339),
	})
	return nil
}
