package calendar

import "time"

// DateOf devuelve el día calendario de t (medianoche UTC).
// Todas las fechas del dominio (nacimiento, vencimientos) viven en UTC.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parsea YYYY-MM-DD a medianoche UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.UTC)
}

func AddDays(d time.Time, n int) time.Time {
	return DateOf(d).AddDate(0, 0, n)
}

// AddMonths conserva el día del mes; si no existe en el mes destino
// se usa el último día de ese mes (31-ene + 1m = 28/29-feb).
func AddMonths(d time.Time, n int) time.Time {
	d = DateOf(d)
	y, m, day := d.Date()

	total := int(m) - 1 + n
	ty := y + floorDiv(total, 12)
	tm := time.Month(floorMod(total, 12) + 1)

	if last := DaysIn(ty, tm); day > last {
		day = last
	}
	return time.Date(ty, tm, day, 0, 0, 0, 0, time.UTC)
}

// AddYears aplica la misma regla que AddMonths: 29-feb + 1 año = 28-feb.
func AddYears(d time.Time, n int) time.Time {
	return AddMonths(d, n*12)
}

// DaysBetween cuenta días calendario completos de a hasta b (b - a).
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

func DaysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
