package compliance

import (
	"time"

	"vaccine-tracker/internal/domain/doses"
)

// Result agrupa el score ponderado (el principal) y el ratio crudo completed/total.
type Result struct {
	Weighted int
	Raw      int
}

// PenaltyWeight devuelve el peso de una dosis missed según sus días de atraso.
func PenaltyWeight(overdueDays int) float64 {
	switch {
	case overdueDays >= 7:
		return 2.0
	case overdueDays >= 4:
		return 1.0
	case overdueDays >= 1:
		return 0.5
	default:
		return 0
	}
}

// penaltyHalves es PenaltyWeight expresado en medias unidades.
func penaltyHalves(overdueDays int) int {
	return int(PenaltyWeight(overdueDays) * 2)
}

// Score calcula el score de adherencia 0..100.
// Sin dosis el sujeto es trivialmente compliant (100).
// Todo el cálculo va en enteros (medias unidades) para que el
// redondeo hacia arriba de un .5 exacto no dependa del float.
func Score(records []doses.DoseRecord, now time.Time) Result {
	total := len(records)
	if total == 0 {
		return Result{Weighted: 100, Raw: 100}
	}

	completed := 0
	halves := 0
	for _, r := range records {
		switch r.Status {
		case doses.StatusCompleted:
			completed++
		case doses.StatusMissed:
			halves += penaltyHalves(doses.OverdueDays(r, now))
		}
	}

	return Result{
		Weighted: clamp(percentHalfUp(2*completed-halves, total)),
		Raw:      clamp(percentHalfUp(2*completed, total)),
	}
}

// percentHalfUp devuelve round(100 * halves / (2*total)) redondeando .5 hacia arriba.
func percentHalfUp(halves, total int) int {
	num := 100 * halves
	if num < 0 {
		num = 0
	}
	den := 2 * total
	return (2*num + den) / (2 * den)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
