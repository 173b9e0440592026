package locale

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/apperr"
)

// Present is the date token for an ongoing period.
const Present = "present"

var shortMonths = map[Locale][12]string{
	ES: {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	EN: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

var presentLabel = map[Locale]string{
	ES: "Actualidad",
	EN: "Present",
}

type unitWords struct{ year, years, month, months string }

var units = map[Locale]unitWords{
	ES: {"año", "años", "mes", "meses"},
	EN: {"year", "years", "month", "months"},
}

// ParseMonth splits a YYYY-MM token. Present resolves to now.
func ParseMonth(token string, now time.Time) (year, month int, err error) {
	if token == Present {
		return now.Year(), int(now.Month()), nil
	}
	parts := strings.Split(token, "-")
	if len(parts) != 2 || len(parts[0]) != 4 {
		return 0, 0, apperr.Data(nil, "malformed date %q, want YYYY-MM", token)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, apperr.Data(err, "malformed year in %q", token)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, apperr.Data(err, "malformed month in %q", token)
	}
	return year, month, nil
}

// FormatDate renders a YYYY-MM token as a short month label ("Jun 2023").
// Malformed tokens are returned unchanged.
func FormatDate(token string, l Locale) string {
	if token == Present {
		return presentLabel[fallback(l)]
	}
	year, month, err := ParseMonth(token, time.Time{})
	if err != nil {
		return token
	}
	return fmt.Sprintf("%s %d", shortMonths[fallback(l)][month-1], year)
}

// CalculateDuration renders the elapsed years and months between two date
// tokens, measured against the current clock when to is Present. It returns
// an empty string for malformed tokens.
func CalculateDuration(from, to string, l Locale) string {
	s, err := DurationBetween(from, to, l, time.Now())
	if err != nil {
		return ""
	}
	return s
}

// DurationBetween is CalculateDuration with an explicit clock.
func DurationBetween(from, to string, l Locale, now time.Time) (string, error) {
	yf, mf, err := ParseMonth(from, now)
	if err != nil {
		return "", err
	}
	yt, mt, err := ParseMonth(to, now)
	if err != nil {
		return "", err
	}

	total := (yt-yf)*12 + (mt - mf)
	if total < 0 {
		total = 0
	}
	years, months := total/12, total%12

	w := units[fallback(l)]
	yearText := func(n int) string { return plural(n, w.year, w.years) }
	monthText := func(n int) string { return plural(n, w.month, w.months) }

	switch {
	case years > 0 && months > 0:
		return yearText(years) + " " + monthText(months), nil
	case years > 0:
		return yearText(years), nil
	default:
		return monthText(months), nil
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}

func fallback(l Locale) Locale {
	if _, ok := units[l]; ok {
		return l
	}
	return Default
}
