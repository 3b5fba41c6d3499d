package nlu

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/saathi-labs/saarthi/internal/domain"
)

var (
	currencyRe = regexp.MustCompile(`₹?\s*([0-9]+(?:\.[0-9]+)?)`)
	digitRunRe = regexp.MustCompile(`[0-9]+`)
)

// ExtractDateRange maps an utterance to a coarse date-range label.
// Defaults to today; never fails.
func ExtractDateRange(text string) domain.DateRange {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "today") || strings.Contains(t, "aaj"):
		return domain.DateRangeToday
	case strings.Contains(t, "yesterday") || strings.Contains(t, "kal"):
		return domain.DateRangeYesterday
	case strings.Contains(t, "week") || strings.Contains(t, "hafta"):
		return domain.DateRangeLastWeek
	default:
		return domain.DateRangeToday
	}
}

// ExtractCurrency finds the first rupee amount in the text, tolerating an
// optional ₹ sign and thousands separators. The bool reports whether an
// amount was found.
func ExtractCurrency(text string) (float64, bool) {
	cleaned := strings.ReplaceAll(text, ",", "")
	m := currencyRe.FindStringSubmatch(cleaned)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ExtractDigits concatenates every digit run in the text, e.g.
// "call me at 98765 43210" -> "9876543210".
func ExtractDigits(text string) string {
	return strings.Join(digitRunRe.FindAllString(text, -1), "")
}
