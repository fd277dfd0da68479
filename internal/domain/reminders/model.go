package reminders

import "time"

// Reminder es una notificación única programada por el cuidador para una dosis.
// Consumed pasa a true exactamente una vez, al dispararse.
type Reminder struct {
	ID        string
	DoseID    string
	SubjectID string

	FireAt  time.Time
	Message string

	Consumed  bool
	CreatedAt time.Time
}
