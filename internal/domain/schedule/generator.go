package schedule

import (
	"time"

	"vaccine-tracker/internal/domain/doses"

	"github.com/google/uuid"
)

// Generate expande birth contra el template en un calendario concreto.
// El orden de salida es el del template. No persiste nada.
func Generate(t Template, birth time.Time, subjectID string, now time.Time) []doses.DoseRecord {
	out := make([]doses.DoseRecord, 0, len(t.defs))

	for i, d := range t.defs {
		// el template ya fue validado en NewTemplate
		due, _ := DueDate(birth, d)

		out = append(out, doses.DoseRecord{
			ID:        uuid.NewString(),
			SubjectID: subjectID,
			Seq:       i + 1,
			DoseName:  d.Name,
			Category:  d.Category,
			DueDate:   due,
			Status:    doses.InitialStatus(due, now),
		})
	}

	return out
}
