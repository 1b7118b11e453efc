package grid

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// MonthKey is a calendar month in canonical MM/YYYY form (zero-padded
// month, four-digit year). Keys order by (year, month); the day of month
// never participates.
type MonthKey string

// monthsPerYear is the borrow amount for month subtraction.
const monthsPerYear = 12

// monthStrategies lists the shapes a month cell may take. Full dates are
// accepted with the day discarded; bare M/YYYY and MM/YYYY come first.
var monthStrategies = []struct {
	re          *regexp.Regexp
	month, year int
}{
	{re: regexp.MustCompile(`^(\d{1,2})/(\d{4})$`), month: 1, year: 2},
	{re: regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`), month: 2, year: 3},
	{re: regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`), month: 2, year: 3},
	{re: regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`), month: 2, year: 1},
}

// NewMonthKey builds a canonical key from a month (1..12) and year.
func NewMonthKey(month, year int) MonthKey {
	return MonthKey(fmt.Sprintf("%02d/%04d", month, year))
}

// ParseMonthKey extracts the month and year from s, accepting M/YYYY,
// MM/YYYY, DD/MM/YYYY, DD-MM-YYYY and YYYY-MM-DD. ok is false when
// nothing matches or the month is out of range.
func ParseMonthKey(s string) (MonthKey, bool) {
	for _, strat := range monthStrategies {
		m := strat.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		month, _ := strconv.Atoi(m[strat.month])
		year, _ := strconv.Atoi(m[strat.year])
		if month < 1 || month > monthsPerYear {
			return "", false
		}
		return NewMonthKey(month, year), true
	}
	return "", false
}

// canonicalMonthRe matches a canonical MM/YYYY key.
var canonicalMonthRe = regexp.MustCompile(`^(\d{2})/(\d{4})$`)

// monthYear splits a canonical key. Malformed keys report (0, 0) and
// sort before every real month.
func (k MonthKey) monthYear() (month, year int) {
	m := canonicalMonthRe.FindStringSubmatch(string(k))
	if m == nil {
		return 0, 0
	}
	month, _ = strconv.Atoi(m[1])
	year, _ = strconv.Atoi(m[2])
	return month, year
}

// CompareMonthKeys orders two keys by year first, then month. It is the
// sole comparator used for month sorting and searching.
func CompareMonthKeys(a, b MonthKey) int {
	am, ay := a.monthYear()
	bm, by := b.monthYear()
	if ay != by {
		return ay - by
	}
	return am - bm
}

// MinusMonths subtracts n whole months, borrowing across year
// boundaries. n may span multiple years.
func (k MonthKey) MinusMonths(n int) MonthKey {
	month, year := k.monthYear()
	month -= n
	for month < 1 {
		month += monthsPerYear
		year--
	}
	for month > monthsPerYear {
		month -= monthsPerYear
		year++
	}
	return NewMonthKey(month, year)
}

// ClampMonthKey snaps target onto the available options: an exact hit is
// returned as-is, otherwise the latest option at or before target, and
// when no option precedes target, the earliest option. This is a
// snap-backward policy, not nearest-neighbour.
func ClampMonthKey(target MonthKey, options []MonthKey) MonthKey {
	if len(options) == 0 {
		return target
	}
	sorted := make([]MonthKey, len(options))
	copy(sorted, options)
	sort.Slice(sorted, func(i, j int) bool {
		return CompareMonthKeys(sorted[i], sorted[j]) < 0
	})

	best := MonthKey("")
	for _, opt := range sorted {
		cmp := CompareMonthKeys(opt, target)
		if cmp == 0 {
			return opt
		}
		if cmp < 0 {
			best = opt
		}
	}
	if best != "" {
		return best
	}
	return sorted[0]
}

// SortMonthKeys sorts keys ascending in place.
func SortMonthKeys(keys []MonthKey) {
	sort.Slice(keys, func(i, j int) bool {
		return CompareMonthKeys(keys[i], keys[j]) < 0
	})
}
