package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vaccine-tracker/internal/platform/calendar"
)

var (
	ErrInvalidTemplate = errors.New("invalid schedule template")
)

type Unit string

const (
	UnitDays   Unit = "days"
	UnitWeeks  Unit = "weeks"
	UnitMonths Unit = "months"
	UnitYears  Unit = "years"
)

// Offset es la edad (desde el nacimiento) a la que corresponde una dosis.
type Offset struct {
	Value int
	Unit  Unit
}

func Days(n int) Offset   { return Offset{Value: n, Unit: UnitDays} }
func Weeks(n int) Offset  { return Offset{Value: n, Unit: UnitWeeks} }
func Months(n int) Offset { return Offset{Value: n, Unit: UnitMonths} }
func Years(n int) Offset  { return Offset{Value: n, Unit: UnitYears} }

func (o Offset) String() string {
	return fmt.Sprintf("%d %s", o.Value, o.Unit)
}

type DoseDefinition struct {
	Name     string
	Category string
	Offset   Offset
}

// Template es una tabla de dosis validada y ordenada cronológicamente.
// Solo se construye con NewTemplate, así Generate nunca falla.
type Template struct {
	defs []DoseDefinition
}

// orderRefs son nacimientos donde el recorte de fin de mes puede
// invertir el orden de filas en meses contra filas en días o semanas.
var orderRefs = func() []time.Time {
	var out []time.Time
	for _, y := range []int{2000, 2001} {
		for m := time.January; m <= time.December; m++ {
			// día 0 del mes siguiente: último día de m
			out = append(out, time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC))
		}
		out = append(out,
			time.Date(y, time.February, 28, 0, 0, 0, 0, time.UTC),
			time.Date(y, time.March, 1, 0, 0, 0, 0, time.UTC),
		)
	}
	return out
}()

func NewTemplate(defs []DoseDefinition) (Template, error) {
	out := make([]DoseDefinition, 0, len(defs))

	for i, d := range defs {
		d.Name = strings.TrimSpace(d.Name)
		d.Category = strings.TrimSpace(d.Category)
		if d.Name == "" {
			return Template{}, fmt.Errorf("%w: row %d: name required", ErrInvalidTemplate, i+1)
		}
		if d.Offset.Value < 0 {
			return Template{}, fmt.Errorf("%w: row %d (%s): negative offset", ErrInvalidTemplate, i+1, d.Name)
		}
		if _, err := DueDate(orderRefs[0], d); err != nil {
			return Template{}, fmt.Errorf("row %d (%s): %w", i+1, d.Name, err)
		}
		if i > 0 {
			prev := out[i-1]
			for _, ref := range orderRefs {
				a, _ := DueDate(ref, prev)
				b, _ := DueDate(ref, d)
				if b.Before(a) {
					return Template{}, fmt.Errorf("%w: row %d (%s): not in chronological order for birth %s",
						ErrInvalidTemplate, i+1, d.Name, ref.Format("2006-01-02"))
				}
			}
		}
		out = append(out, d)
	}

	return Template{defs: out}, nil
}

func (t Template) Len() int { return len(t.defs) }

// Definitions devuelve una copia de las filas.
func (t Template) Definitions() []DoseDefinition {
	out := make([]DoseDefinition, len(t.defs))
	copy(out, t.defs)
	return out
}

// DueDate calcula birth + offset.
// Días y semanas son exactos; meses y años conservan el día del mes
// y, si no existe, usan el último día del mes destino.
func DueDate(birth time.Time, d DoseDefinition) (time.Time, error) {
	n := d.Offset.Value
	switch d.Offset.Unit {
	case UnitDays:
		return calendar.AddDays(birth, n), nil
	case UnitWeeks:
		return calendar.AddDays(birth, 7*n), nil
	case UnitMonths:
		return calendar.AddMonths(birth, n), nil
	case UnitYears:
		return calendar.AddYears(birth, n), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown offset unit %q", ErrInvalidTemplate, d.Offset.Unit)
	}
}
