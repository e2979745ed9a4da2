package datetime

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DueDateLayout is the canonical storage and comparison form of a due date.
const DueDateLayout = "2006-01-02"

// ErrInvalidDate is returned when a value cannot be read as a calendar date.
var ErrInvalidDate = errors.New("invalid date")

// dueDateLayouts are tried in order. Month and day fields accept one or two
// digits, so 2023-1-5 and 2023-01-05 both match the first layout.
var dueDateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"1/2/2006",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon Jan 2 2006",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"2006",
}

// ParseDueDate reads s as a calendar date. The date is kept as written,
// without converting between zones.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrInvalidDate, "%q", s)
}

// FormatDueDate renders t as yyyy-MM-dd.
func FormatDueDate(t time.Time) string {
	return t.Format(DueDateLayout)
}

// NormalizeDueDate parses s and renders it in the canonical layout.
func NormalizeDueDate(s string) (string, error) {
	t, err := ParseDueDate(s)
	if err != nil {
		return "", err
	}
	return FormatDueDate(t), nil
}

type key string

const dueDateKey key = "DueDate"

// SetDueDateToContext stores a normalized due date on ctx.
func SetDueDateToContext(ctx context.Context, dueDate string) context.Context {
	return context.WithValue(ctx, dueDateKey, dueDate)
}

// GetDueDateFromContext returns the due date stored by SetDueDateToContext.
func GetDueDateFromContext(ctx context.Context) (string, bool) {
	d, ok := ctx.Value(dueDateKey).(string)
	return d, ok && d != ""
}
