// Package locales holds the calendar strings shared by the backends.
package locales

// Table carries the month and weekday names for one language.
type Table struct {
	Months [12]string
	// Days is Monday-first.
	Days [7]string
}

var tables = map[string]*Table{
	"en": {
		Months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		Days: [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	},
	"it": {
		Months: [12]string{"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
			"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre"},
		Days: [7]string{"Lu", "Ma", "Me", "Gi", "Ve", "Sa", "Do"},
	},
	"fr": {
		Months: [12]string{"Janvier", "Fevrier", "Mars", "Avril", "Mai", "Juin",
			"Juillet", "Aout", "Septembre", "Octobre", "Novembre", "Decembre"},
		Days: [7]string{"Lu", "Ma", "Me", "Je", "Ve", "Sa", "Di"},
	},
	"de": {
		Months: [12]string{"Januar", "Februar", "Maerz", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		Days: [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"},
	},
}

// Lookup returns the table for the language code, falling back to English.
func Lookup(code string) *Table {
	if t, ok := tables[code]; ok {
		return t
	}
	return tables["en"]
}
