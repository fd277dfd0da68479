package doses

import "time"

// Sweep promueve a missed toda dosis upcoming vencida respecto de now.
// Es pura: no modifica records y solo toca Status en la copia devuelta.
func Sweep(records []DoseRecord, now time.Time) ([]DoseRecord, bool) {
	out := make([]DoseRecord, len(records))
	changed := false

	for i, r := range records {
		updated, ok := MarkMissed(r, now)
		if ok {
			changed = true
		}
		out[i] = updated
	}

	return out, changed
}
