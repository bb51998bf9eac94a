package locale

// Width selects the length of a month or weekday name.
type Width int

const (
	Long   Width = iota // "janvier", "dimanche"
	Short               // "janv.", "dim."
	Narrow              // "J", "D" — frequently ambiguous by design
)

// Name tables are hand-curated from CLDR data. Weekdays are indexed
// Sunday=0 to match time.Weekday; months are indexed January=0.
// Irregular regional variants (Austrian month names, German "mrz") are
// patched in by the language packages, not here.

var monthNames = map[string][3][]string{
	"en": {
		{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	},
	"de": {
		{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
			"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	},
	"fr": {
		{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		{"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc."},
		{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	},
	"pt": {
		{"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
			"jul.", "ago.", "set.", "out.", "nov.", "dez."},
		{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	},
}

var weekdayNames = map[string][3][]string{
	"en": {
		{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		{"S", "M", "T", "W", "T", "F", "S"},
	},
	"de": {
		{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
		{"S", "M", "D", "M", "D", "F", "S"},
	},
	"fr": {
		{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		{"D", "L", "M", "M", "J", "V", "S"},
	},
	"pt": {
		{"domingo", "segunda-feira", "terça-feira", "quarta-feira",
			"quinta-feira", "sexta-feira", "sábado"},
		{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
		{"D", "S", "T", "Q", "Q", "S", "S"},
	},
}

// MonthNames returns the twelve month names of lang at the given width.
// Unknown languages fall back to English. The returned slice is shared;
// callers must not modify it.
func MonthNames(lang string, w Width) []string {
	if table, ok := monthNames[lang]; ok {
		return table[w]
	}
	return monthNames["en"][w]
}

// WeekdayNames returns the seven weekday names of lang (Sunday first) at
// the given width. Unknown languages fall back to English. The returned
// slice is shared; callers must not modify it.
func WeekdayNames(lang string, w Width) []string {
	if table, ok := weekdayNames[lang]; ok {
		return table[w]
	}
	return weekdayNames["en"][w]
}
