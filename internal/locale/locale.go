package locale

import "strings"

// Locale holds the month and weekday names used for display.
// Weekday arrays are indexed 0=Sunday..6=Saturday.
type Locale struct {
	Tag            string
	MonthNames     [12]string
	MonthAbbrevs   [12]string
	WeekdayNames   [7]string
	WeekdayAbbrevs [7]string
}

// MonthName returns the full name for a 0-indexed month.
func (l *Locale) MonthName(month int) string {
	return l.MonthNames[((month%12)+12)%12]
}

// MonthAbbrev returns the abbreviated name for a 0-indexed month.
func (l *Locale) MonthAbbrev(month int) string {
	return l.MonthAbbrevs[((month%12)+12)%12]
}

// WeekdayAbbrev returns the abbreviated name for a weekday (0=Sunday).
func (l *Locale) WeekdayAbbrev(weekday int) string {
	return l.WeekdayAbbrevs[((weekday%7)+7)%7]
}

var english = &Locale{
	Tag:            "en",
	MonthNames:     [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	MonthAbbrevs:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	WeekdayNames:   [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	WeekdayAbbrevs: [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
}

var locales = map[string]*Locale{
	"en": english,
	"de": {
		Tag:            "de",
		MonthNames:     [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		MonthAbbrevs:   [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		WeekdayNames:   [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		WeekdayAbbrevs: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	},
	"fr": {
		Tag:            "fr",
		MonthNames:     [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		MonthAbbrevs:   [12]string{"janv", "févr", "mars", "avr", "mai", "juin", "juil", "août", "sept", "oct", "nov", "déc"},
		WeekdayNames:   [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		WeekdayAbbrevs: [7]string{"di", "lu", "ma", "me", "je", "ve", "sa"},
	},
	"es": {
		Tag:            "es",
		MonthNames:     [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		MonthAbbrevs:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
		WeekdayNames:   [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		WeekdayAbbrevs: [7]string{"do", "lu", "ma", "mi", "ju", "vi", "sá"},
	},
	"it": {
		Tag:            "it",
		MonthNames:     [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
		MonthAbbrevs:   [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
		WeekdayNames:   [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
		WeekdayAbbrevs: [7]string{"do", "lu", "ma", "me", "gi", "ve", "sa"},
	},
	"pt": {
		Tag:            "pt",
		MonthNames:     [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		MonthAbbrevs:   [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
		WeekdayNames:   [7]string{"domingo", "segunda", "terça", "quarta", "quinta", "sexta", "sábado"},
		WeekdayAbbrevs: [7]string{"do", "se", "te", "qa", "qi", "sx", "sá"},
	},
}

// Default is the locale used when no tag matches.
func Default() *Locale {
	return english
}

// Get resolves a locale tag ("de", "de-AT", "fr_FR") to a registered locale.
// Unknown tags fall back to English rather than failing, so a misconfigured
// locale degrades to readable output.
func Get(tag string) *Locale {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if l, ok := locales[tag]; ok {
		return l
	}
	// Try the primary subtag for regionalized tags.
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		if l, ok := locales[tag[:i]]; ok {
			return l
		}
	}
	return english
}

// Tags returns the registered locale tags in no particular order.
func Tags() []string {
	tags := make([]string, 0, len(locales))
	for tag := range locales {
		tags = append(tags, tag)
	}
	return tags
}
