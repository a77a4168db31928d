// Package dateutils provides the ordered date-format cascade used when
// normalizing statement rows.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date format constants. Statement exports mix day-first numeric layouts
// with spelled-out month layouts like "31 OCT 2025".
const (
	DateLayoutISO        = "2006-01-02"
	DateLayoutMonthSpace = "02 Jan 2006"
	DateLayoutMonthDash  = "02-Jan-2006"
	DateLayoutDayFirst   = "02/01/2006"
	DateLayoutSwiss      = "02.01.2006"
	DateLayoutFull       = "2006-01-02 15:04:05"
)

// CommonFormats is the prioritized list of layouts tried when parsing.
// The first layout that succeeds wins, so more specific layouts come
// before ambiguous ones.
var CommonFormats = []string{
	DateLayoutMonthSpace,
	DateLayoutMonthDash,
	DateLayoutISO,
	DateLayoutDayFirst,
	"02-01-2006",
	"2006/01/02",
	DateLayoutSwiss,
	DateLayoutFull,
}

var spacesRe = regexp.MustCompile(`\s+`)

// ParseDate attempts each layout in CommonFormats against the cleaned
// input and returns the parsed time together with the layout that matched.
// Failure is reported as an ordinary error, never a panic: the caller
// decides whether the row is dropped.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims and collapses whitespace, and title-cases spelled
// month names so "31 OCT 2025" matches the "02 Jan 2006" layout.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	dateStr = spacesRe.ReplaceAllString(dateStr, " ")

	fields := strings.FieldsFunc(dateStr, func(r rune) bool {
		return r == ' ' || r == '-'
	})
	for _, f := range fields {
		if len(f) == 3 && isAlpha(f) {
			title := strings.ToUpper(f[:1]) + strings.ToLower(f[1:])
			dateStr = strings.Replace(dateStr, f, title, 1)
		}
	}

	return dateStr
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
