package finance

import (
	"fmt"
	"strings"
	"time"
)

// Period is an informational granularity hint. It is carried with a filter
// but never checked against the filter's date bounds.
type Period string

const (
	PeriodDay    Period = "day"
	PeriodMonth  Period = "month"
	PeriodYear   Period = "year"
	PeriodCustom Period = "custom"
)

var periodTags = map[string]Period{
	"dia":           PeriodDay,
	"mes":           PeriodMonth,
	"ano":           PeriodYear,
	"personalizado": PeriodCustom,
	"day":           PeriodDay,
	"month":         PeriodMonth,
	"year":          PeriodYear,
	"custom":        PeriodCustom,
}

func (p Period) known() bool {
	switch p {
	case PeriodDay, PeriodMonth, PeriodYear, PeriodCustom:
		return true
	}
	return false
}

const dateLayout = "2006-01-02"

// RawFilter is the filter as it arrives from the request layer: four
// optional strings, categories comma separated.
type RawFilter struct {
	Start      string
	End        string
	Period     string
	Categories string
}

// Filter is the canonical query predicate. Empty fields mean "unbounded".
// Start and End are ISO calendar dates kept as text so that malformed
// input reaches storage uninterpreted.
type Filter struct {
	Start      string
	End        string
	Period     Period
	Categories []string
}

// Normalize coerces a raw filter into a Filter. It trims whitespace, drops
// empty values and maps period wire tags. No other validation is done.
func Normalize(raw RawFilter) Filter {
	f := Filter{
		Start: strings.TrimSpace(raw.Start),
		End:   strings.TrimSpace(raw.End),
	}

	if tag := strings.ToLower(strings.TrimSpace(raw.Period)); tag != "" {
		if p, ok := periodTags[tag]; ok {
			f.Period = p
		} else {
			f.Period = Period(tag)
		}
	}

	for _, name := range strings.Split(raw.Categories, ",") {
		if name = strings.TrimSpace(name); name != "" {
			f.Categories = append(f.Categories, name)
		}
	}

	return f
}

// Validate reports ErrInvalidFilter for unparseable dates, an inverted
// range or an unknown period.
func (f Filter) Validate() error {
	var start, end time.Time
	var err error
	if f.Start != "" {
		if start, err = parseDate(f.Start); err != nil {
			return fmt.Errorf("%w: start date %q", ErrInvalidFilter, f.Start)
		}
	}
	if f.End != "" {
		if end, err = parseDate(f.End); err != nil {
			return fmt.Errorf("%w: end date %q", ErrInvalidFilter, f.End)
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidFilter, f.Start, f.End)
	}
	if f.Period != "" && !f.Period.known() {
		return fmt.Errorf("%w: unknown period %q", ErrInvalidFilter, f.Period)
	}
	return nil
}

// WithDateRange returns a copy of f bounded to [start, end]. The category
// set and period are preserved.
func (f Filter) WithDateRange(start, end time.Time) Filter {
	out := f
	out.Start = start.Format(dateLayout)
	out.End = end.Format(dateLayout)
	if f.Categories != nil {
		out.Categories = append([]string(nil), f.Categories...)
	}
	return out
}

// Key is a stable textual form of f, suitable for cache keys.
func (f Filter) Key() string {
	return fmt.Sprintf("start=%s&end=%s&period=%s&categories=%s",
		f.Start, f.End, f.Period, strings.Join(f.Categories, ","))
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ParseDate parses an ISO calendar date (or RFC 3339 timestamp) and
// truncates it to the date.
func ParseDate(s string) (time.Time, error) {
	t, err := parseDate(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func monthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func monthEnd(t time.Time) time.Time {
	return monthStart(t).AddDate(0, 1, -1)
}
