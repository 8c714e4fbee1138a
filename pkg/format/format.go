// Package format holds the presentation helpers shared by the API and its
// clients: French date layouts, locale-aware currency rendering, and the
// status label/color lookups used by mission tables.
package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var shortMonths = [12]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

var fullMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var chartMonths = [12]string{
	"Jan", "Fév", "Mar", "Avr", "Mai", "Juin",
	"Juil", "Août", "Sep", "Oct", "Nov", "Déc",
}

var dayNames = [7]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

// MonthShort returns the abbreviated chart label for a month (1-12).
func MonthShort(month time.Month) string {
	return chartMonths[int(month)-1]
}

// Date renders t using one of the fixed layouts: "PP" (5 avr. 2023),
// "P" (05/04/2023), "PPP" (5 avril 2023), "PPPP" (mercredi 5 avril 2023),
// "d MMM yyyy" (alias of PP) and "yyyy-MM-dd". Unknown layouts fall back to
// the short French numeric form.
func Date(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	switch layout {
	case "PP", "d MMM yyyy":
		return fmt.Sprintf("%d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
	case "P":
		return fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), t.Year())
	case "PPP":
		return fmt.Sprintf("%d %s %d", t.Day(), fullMonths[t.Month()-1], t.Year())
	case "PPPP":
		return fmt.Sprintf("%s %d %s %d", dayNames[int(t.Weekday())], t.Day(), fullMonths[t.Month()-1], t.Year())
	case "yyyy-MM-dd":
		return t.Format("2006-01-02")
	default:
		return t.Format("02/01/2006")
	}
}

// Currency renders an amount with its ISO 4217 code in French locale
// conventions. Unknown codes fall back to "1234.50 XXX".
func Currency(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", amount, code)
	}
	p := message.NewPrinter(language.French)
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}

// StatusLabel returns the French label for a mission status.
func StatusLabel(status string) string {
	switch strings.ToLower(status) {
	case "paid":
		return "Payé"
	case "pending":
		return "En attente"
	case "partial":
		return "Partiel"
	case "cancelled":
		return "Annulé"
	default:
		return "Inconnu"
	}
}

// StatusColor returns the badge color key for a mission status.
func StatusColor(status string) string {
	switch strings.ToLower(status) {
	case "paid":
		return "green"
	case "pending":
		return "yellow"
	case "partial":
		return "blue"
	case "cancelled":
		return "red"
	default:
		return "gray"
	}
}

var countryNames = map[string]string{
	"FR": "France",
	"BE": "Belgique",
	"CH": "Suisse",
	"LU": "Luxembourg",
	"CA": "Canada",
	"BJ": "Bénin",
	"SN": "Sénégal",
	"CI": "Côte d'Ivoire",
}

// CountryName returns a display name for a country code, or the code itself
// when no name is known.
func CountryName(code string) string {
	if code == "" {
		return "N/A"
	}
	if name, ok := countryNames[strings.ToUpper(code)]; ok {
		return name
	}
	return strings.ToUpper(code)
}
