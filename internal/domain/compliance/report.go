package compliance

import (
	"time"

	"vaccine-tracker/internal/domain/doses"
)

// Report es la vista para el cuidador: qué está hecho, qué toca y qué se perdió.
type Report struct {
	Total     int
	Completed int
	Upcoming  int
	Missed    int

	Score Result

	// NextDue es la próxima dosis upcoming (la de vencimiento más cercano).
	NextDue *doses.DoseRecord
}

func Summarize(records []doses.DoseRecord, now time.Time) Report {
	rep := Report{
		Total: len(records),
		Score: Score(records, now),
	}

	for i := range records {
		r := records[i]
		switch r.Status {
		case doses.StatusCompleted:
			rep.Completed++
		case doses.StatusMissed:
			rep.Missed++
		case doses.StatusUpcoming:
			rep.Upcoming++
			if rep.NextDue == nil || r.DueDate.Before(rep.NextDue.DueDate) {
				next := r
				rep.NextDue = &next
			}
		}
	}

	return rep
}
