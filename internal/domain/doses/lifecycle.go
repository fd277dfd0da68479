package doses

import (
	"strings"
	"time"

	"vaccine-tracker/internal/platform/calendar"
)

// IsOverdue: el día de vencimiento es estrictamente anterior al día de now.
// Una dosis que vence hoy sigue upcoming.
func IsOverdue(r DoseRecord, now time.Time) bool {
	return calendar.DateOf(r.DueDate).Before(calendar.DateOf(now))
}

// InitialStatus es el estado con el que nace un registro generado.
func InitialStatus(due, now time.Time) Status {
	if calendar.DateOf(due).Before(calendar.DateOf(now)) {
		return StatusMissed
	}
	return StatusUpcoming
}

// OverdueDays devuelve los días completos transcurridos desde el vencimiento
// (<= 0 si todavía no venció).
func OverdueDays(r DoseRecord, now time.Time) int {
	return calendar.DaysBetween(r.DueDate, now)
}

// Complete aplica upcoming|missed -> completed.
// Completed es terminal: si ya estaba completada devuelve el registro tal cual.
func Complete(r DoseRecord, at time.Time, note string) (DoseRecord, bool) {
	if r.Status == StatusCompleted {
		return r, false
	}
	t := at
	r.Status = StatusCompleted
	r.CompletedDate = &t
	if n := strings.TrimSpace(note); n != "" {
		r.Note = n
	}
	return r, true
}

// MarkMissed aplica upcoming -> missed si la dosis está vencida.
func MarkMissed(r DoseRecord, now time.Time) (DoseRecord, bool) {
	if r.Status != StatusUpcoming || !IsOverdue(r, now) {
		return r, false
	}
	r.Status = StatusMissed
	return r, true
}
