package grid

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateKey is a calendar date in canonical ISO form YYYY-MM-DD. The
// canonical form is zero-padded and big-endian, so keys compare
// correctly as plain strings.
type DateKey string

// DatePlaceholder is rendered in place of an invalid or empty date key.
const DatePlaceholder = "—"

// dateStrategy pairs an input pattern with the positions of its day,
// month and year capture groups. Strategies are tried in a fixed
// priority order and the first match wins.
type dateStrategy struct {
	re               *regexp.Regexp
	day, month, year int
}

// dateStrategies lists the accepted input shapes: DD/MM/YYYY, DD-MM-YYYY
// and ISO YYYY-MM-DD. Anything else is rejected.
var dateStrategies = []dateStrategy{
	{re: regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`), day: 1, month: 2, year: 3},
	{re: regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`), day: 1, month: 2, year: 3},
	{re: regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`), year: 1, month: 2, day: 3},
}

// ParseDateKey parses s into a canonical DateKey. The calendar date is
// validated by reconstructing it as a UTC time and checking that the
// year, month and day survive the round trip, which rejects overflow
// dates such as 31-02-2024.
func ParseDateKey(s string) (DateKey, error) {
	for _, strat := range dateStrategies {
		m := strat.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		day, _ := strconv.Atoi(m[strat.day])
		month, _ := strconv.Atoi(m[strat.month])
		year, _ := strconv.Atoi(m[strat.year])

		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
			return "", fmt.Errorf("invalid calendar date: %q", s)
		}
		return DateKey(t.Format("2006-01-02")), nil
	}
	return "", fmt.Errorf("unrecognized date format: %q", s)
}

// isoRe matches a canonical DateKey without validating the calendar.
var isoRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Valid reports whether the key is in canonical form and denotes a real
// calendar date.
func (d DateKey) Valid() bool {
	_, err := ParseDateKey(string(d))
	return err == nil && isoRe.MatchString(string(d))
}

// Time returns the key as a UTC midnight time. The zero time is returned
// for invalid keys.
func (d DateKey) Time() time.Time {
	t, err := time.Parse("2006-01-02", string(d))
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// DisplaySlash renders the key as DD/MM/YYYY, or the placeholder for an
// invalid or empty key.
func (d DateKey) DisplaySlash() string {
	return d.display("/")
}

// DisplayDash renders the key as DD-MM-YYYY, or the placeholder for an
// invalid or empty key.
func (d DateKey) DisplayDash() string {
	return d.display("-")
}

func (d DateKey) display(sep string) string {
	m := isoRe.FindStringSubmatch(string(d))
	if m == nil || !d.Valid() {
		return DatePlaceholder
	}
	return m[3] + sep + m[2] + sep + m[1]
}

// YearBefore returns the key for the same month and day one calendar
// year earlier. ok is false when that date does not exist (Feb 29 of a
// non-leap prior year). This is an exact year decrement, not a 365-day
// shift.
func (d DateKey) YearBefore() (DateKey, bool) {
	m := isoRe.FindStringSubmatch(string(d))
	if m == nil {
		return "", false
	}
	year, _ := strconv.Atoi(m[1])
	prev := fmt.Sprintf("%04d-%s-%s", year-1, m[2], m[3])
	key, err := ParseDateKey(prev)
	if err != nil {
		return "", false
	}
	return key, true
}
