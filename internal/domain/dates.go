package domain

import "time"

// DateRange is an inclusive creation-date filter, compared at day
// granularity: start-of-day of Start through end-of-day of End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(StartOfDay(r.Start)) && !t.After(EndOfDay(r.End))
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// FormatLimaTime renders a timestamp in the shop's timezone for display.
func FormatLimaTime(t time.Time) string {
	loc, err := time.LoadLocation("America/Lima")
	if err != nil {
		loc = time.FixedZone("-05", -5*60*60)
	}
	return t.In(loc).Format("02/01/2006 15:04:05")
}
