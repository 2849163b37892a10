package util

import (
	"strings"
	"time"
)

// FormatTimeTpl formats t using a template with placeholders.
//
// Supported placeholders:
// - YYYY: 4-digit year
// - YY: 2-digit year
// - MM: 2-digit month (01-12)
// - DD: 2-digit day (01-31)
// - hh: 2-digit hour (00-23)
// - mm: 2-digit minute (00-59)
// - ss: 2-digit second (00-59)
//
// Returns an empty string for the zero time.
//
// Example:
//
//	util.FormatTimeTpl(t, "YYYY.MM.DD")       // "2023.11.10"
//	util.FormatTimeTpl(t, "YYYY-MM-DD hh:mm") // "2023-11-10 00:00"
func FormatTimeTpl(t time.Time, tpl string) string {
	if t.IsZero() {
		return ""
	}

	// YYYY must be replaced before YY.
	replacements := []struct{ from, to string }{
		{"YYYY", "2006"},
		{"YY", "06"},
		{"MM", "01"},
		{"DD", "02"},
		{"hh", "15"},
		{"mm", "04"},
		{"ss", "05"},
	}

	goTpl := tpl
	for _, r := range replacements {
		goTpl = strings.ReplaceAll(goTpl, r.from, r.to)
	}

	return t.Format(goTpl)
}
