package carto2pdf

// weekdayNames maps the two-letter weekday codes used by the catalogue to
// French day names.
var weekdayNames = map[string]string{
	"Mo": "Lundi",
	"Tu": "Mardi",
	"We": "Mercredi",
	"Th": "Jeudi",
	"Fr": "Vendredi",
	"Sa": "Samedi",
	"Su": "Dimanche",
}

// DayName returns the French name for a weekday code.
// Unknown codes are returned unchanged.
func DayName(code string) string {
	if name, ok := weekdayNames[code]; ok {
		return name
	}
	return code
}
