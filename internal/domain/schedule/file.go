package schedule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type fileRow struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Days     *int   `yaml:"days"`
	Weeks    *int   `yaml:"weeks"`
	Months   *int   `yaml:"months"`
	Years    *int   `yaml:"years"`
}

type fileDoc struct {
	Doses []fileRow `yaml:"doses"`
}

// LoadTemplateFile lee un template YAML:
//
//	doses:
//	  - name: BCG
//	    category: Tuberculosis
//	    days: 0
//	  - name: Hexavalent-1
//	    weeks: 6
//
// Cada fila debe tener exactamente una de days/weeks/months/years.
func LoadTemplateFile(path string) (Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("read template file: %w", err)
	}
	return ParseTemplate(raw)
}

func ParseTemplate(raw []byte) (Template, error) {
	var doc fileDoc
	if err := yaml.UnmarshalStrict(raw, &doc); err != nil {
		return Template{}, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	defs := make([]DoseDefinition, 0, len(doc.Doses))
	for i, r := range doc.Doses {
		off, err := r.offset()
		if err != nil {
			return Template{}, fmt.Errorf("%w: row %d (%s): %v", ErrInvalidTemplate, i+1, r.Name, err)
		}
		defs = append(defs, DoseDefinition{
			Name:     r.Name,
			Category: r.Category,
			Offset:   off,
		})
	}

	return NewTemplate(defs)
}

func (r fileRow) offset() (Offset, error) {
	var (
		out Offset
		n   int
	)
	set := func(v *int, u Unit) {
		if v == nil {
			return
		}
		n++
		out = Offset{Value: *v, Unit: u}
	}
	set(r.Days, UnitDays)
	set(r.Weeks, UnitWeeks)
	set(r.Months, UnitMonths)
	set(r.Years, UnitYears)

	if n != 1 {
		return Offset{}, fmt.Errorf("expected exactly one of days/weeks/months/years, got %d", n)
	}
	return out, nil
}
