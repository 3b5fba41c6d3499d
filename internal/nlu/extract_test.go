package nlu

import (
	"testing"

	"github.com/saathi-labs/saarthi/internal/domain"
)

func TestExtractDateRange(t *testing.T) {
	cases := []struct {
		text string
		want domain.DateRange
	}{
		{"aaj ka hisaab", domain.DateRangeToday},
		{"how much did I earn Today", domain.DateRangeToday},
		{"kal ki kamai", domain.DateRangeYesterday},
		{"yesterday please", domain.DateRangeYesterday},
		{"pichle hafta", domain.DateRangeLastWeek},
		{"last week earnings", domain.DateRangeLastWeek},
		{"kuch bhi", domain.DateRangeToday}, // default
	}
	for _, tc := range cases {
		if got := ExtractDateRange(tc.text); got != tc.want {
			t.Errorf("ExtractDateRange(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestExtractCurrency(t *testing.T) {
	cases := []struct {
		text  string
		want  float64
		found bool
	}{
		{"₹1,250 mila", 1250, true},
		{"₹ 99.50", 99.50, true},
		{"750 rupaye", 750, true},
		{"koi amount nahi", 0, false},
	}
	for _, tc := range cases {
		got, found := ExtractCurrency(tc.text)
		if found != tc.found || got != tc.want {
			t.Errorf("ExtractCurrency(%q) = (%v, %v), want (%v, %v)", tc.text, got, found, tc.want, tc.found)
		}
	}
}

func TestExtractDigits(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"call me at 98765 43210", "9876543210"},
		{"9876543210", "9876543210"},
		{"no digits here", ""},
	}
	for _, tc := range cases {
		if got := ExtractDigits(tc.text); got != tc.want {
			t.Errorf("ExtractDigits(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}
