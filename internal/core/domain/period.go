package domain

import (
	"fmt"
	"time"
)

// MonthRange returns the half-open range [first of month, first of next month).
// December rolls over into January of the following year.
func MonthRange(year int, month time.Month) (time.Time, time.Time, error) {
	if year < 1 || month < time.January || month > time.December {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %d-%02d", year, int(month))
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var end time.Time
	if month == time.December {
		end = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		end = time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	}
	return start, end, nil
}

// DaysInMonth is the number of calendar days of the given month.
func DaysInMonth(year int, month time.Month) int {
	start, end, err := MonthRange(year, month)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}
