package reminders

import (
	"context"
	"errors"
	"time"
)

// Notification es lo que se emite cuando un reminder se dispara.
// La capa de UI la convierte en una notificación de plataforma.
type Notification struct {
	ReminderID string    `json:"reminder_id"`
	DoseID     string    `json:"dose_id"`
	SubjectID  string    `json:"subject_id"`
	Message    string    `json:"message"`
	FireAt     time.Time `json:"fire_at"`
	FiredAt    time.Time `json:"fired_at"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapta una función a Notifier.
type NotifierFunc func(ctx context.Context, n Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// Multi reparte la notificación a todos los sinks; un sink que falla no
// impide que los demás reciban la notificación.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, nt := range m {
		if nt == nil {
			continue
		}
		if err := nt.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
