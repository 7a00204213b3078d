package document

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

var germanMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// formatLongDate renders the long German form, e.g. "15. Januar 2024".
func formatLongDate(t time.Time) string {
	return fmt.Sprintf("%d. %s %d", t.Day(), germanMonths[t.Month()-1], t.Year())
}

// formatKm renders an odometer value with German thousands grouping.
func formatKm(km int) string {
	s := strconv.Itoa(km)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// formatAmount rounds to two places at this presentation boundary.
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatFloat(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(2)
}

// formatHours drops trailing zeros so 1.5h prints as "1.5" and 2h as "2".
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
