package comm

import (
	"fmt"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/itchio/ichor"
)

// now is swapped out in tests
var now = time.Now

// FormatDate turns an API timestamp into "2021-11-12 (3 days ago)".
// Unparseable values are returned as-is.
func FormatDate(s string) string {
	t, err := ichor.ParseAPIDate(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%s (%s)", t.Format("2006-01-02"), humanize.RelTime(t, now(), "ago", "from now"))
}

// FormatCount formats an optional count with thousands separators,
// "-" when absent
func FormatCount(n *int64) string {
	if n == nil {
		return "-"
	}
	return humanize.Comma(*n)
}

// FormatCents formats an amount in cents of a dollar
func FormatCents(cents int64) string {
	if cents == 0 {
		return "free"
	}
	return fmt.Sprintf("$%s.%02d", humanize.Comma(cents/100), cents%100)
}

// FormatOptional returns "-" for nil or empty strings
func FormatOptional(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// FormatList joins values, "-" when there are none
func FormatList(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
