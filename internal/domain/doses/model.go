package doses

import "time"

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
)

// DoseRecord es una dosis concreta de un sujeto.
// DueDate se calcula una vez al generar el calendario y no cambia.
// CompletedDate != nil sii Status == StatusCompleted.
type DoseRecord struct {
	ID        string
	SubjectID string

	// Seq es la fila del template (1..n); ordena el calendario.
	Seq      int
	DoseName string
	Category string

	DueDate time.Time
	Status  Status

	CompletedDate *time.Time
	Note          string
}
