package schedule

const hexavalentSet = "DTP, Hib, Hepatitis B, IPV, Rotavirus, PCV"

var canonicalRows = []DoseDefinition{
	{Name: "BCG", Category: "Tuberculosis", Offset: Days(0)},
	{Name: "OPV-0", Category: "Polio", Offset: Days(0)},
	{Name: "Hepatitis B-0", Category: "Hepatitis B", Offset: Days(0)},

	{Name: "Hexavalent-1", Category: hexavalentSet, Offset: Weeks(6)},
	{Name: "Hexavalent-2", Category: hexavalentSet, Offset: Weeks(10)},
	{Name: "Hexavalent-3", Category: hexavalentSet, Offset: Weeks(14)},
	{Name: "fIPV-2", Category: "Polio", Offset: Weeks(14)},

	{Name: "MR-1", Category: "Measles, Rubella", Offset: Months(9)},
	{Name: "JE-1", Category: "Japanese Encephalitis", Offset: Months(9)},

	{Name: "Hepatitis A-1", Category: "Hepatitis A", Offset: Months(12)},

	{Name: "DPT Booster-1", Category: "Diphtheria, Pertussis, Tetanus", Offset: Months(18)},
	{Name: "MR-2", Category: "Measles, Rubella", Offset: Months(18)},
	{Name: "OPV Booster", Category: "Polio", Offset: Months(18)},
	{Name: "JE-2", Category: "Japanese Encephalitis", Offset: Months(18)},
	{Name: "Vitamin A-2", Category: "Vitamin A", Offset: Months(18)},

	{Name: "DPT Booster-2", Category: "Diphtheria, Pertussis, Tetanus", Offset: Years(5)},
	{Name: "Varicella-2", Category: "Chickenpox", Offset: Years(5)},

	{Name: "Td-10", Category: "Tetanus, Diphtheria", Offset: Years(10)},

	{Name: "Td-16", Category: "Tetanus, Diphtheria", Offset: Years(16)},
}

// Canonical devuelve el calendario estándar de 19 dosis.
func Canonical() Template {
	t, err := NewTemplate(canonicalRows)
	if err != nil {
		// tabla constante: solo puede fallar por un error de programación
		panic(err)
	}
	return t
}
