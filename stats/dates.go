package stats

import "time"

// DateRange returns the earliest and latest date truncated to midnight in
// their own location.  When both fall on the same day the max is moved one
// day forward so the range is never empty.
func DateRange(dates []time.Time) (minDate, maxDate time.Time, err error) {

	if len(dates) == 0 {
		return time.Time{}, time.Time{}, ErrNoData
	}

	minDate, maxDate = dates[0], dates[0]

	for _, d := range dates[1:] {
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	minDate = midnight(minDate)
	maxDate = midnight(maxDate)

	// make sure the min and max values are at least a day apart
	if minDate.Equal(maxDate) {
		maxDate = maxDate.AddDate(0, 0, 1)
	}

	return minDate, maxDate, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
