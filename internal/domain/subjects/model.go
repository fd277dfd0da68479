package subjects

import "time"

// Subject es la persona a la que se le sigue el calendario de vacunación.
// BirthDate es un día calendario (medianoche UTC) y no cambia tras la creación:
// la edad siempre se deriva de ella.
type Subject struct {
	ID             string
	OwnerAccountID string

	Name      string
	BirthDate time.Time

	CreatedAt time.Time
}
