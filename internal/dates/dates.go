// Package dates turns the loosely formatted dates found in resumes into
// calendar dates.
package dates

import (
	"database/sql"
	"strings"
	"time"

	"github.com/muhammadolammi/resumeparser/internal/logger"
)

// layouts are tried in order. Month-first beats day-first for ambiguous
// slash dates such as 03/04/2020.
var layouts = []string{
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
	"2/1/2006",
	"January 2006",
	"Jan 2006",
	"2006",
}

// Normalize parses raw into a date. The bool is false when raw is absent
// (empty, "null", "none") or matches none of the known layouts.
func Normalize(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	switch strings.ToLower(s) {
	case "null", "none":
		return time.Time{}, false
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}

	logger.Warn().Str("date", raw).Msg("could not parse date")
	return time.Time{}, false
}

// NullTime is Normalize shaped for a nullable DATE column.
func NullTime(raw string) sql.NullTime {
	t, ok := Normalize(raw)
	return sql.NullTime{Time: t, Valid: ok}
}
