package streaks

import "time"

// The app runs on a single fixed-offset calendar (GMT+1, Tunisia) with a day
// that resets at 03:30 rather than midnight: between 00:00 and 03:29 the app
// still considers it "yesterday". Every streak computation and date
// comparison goes through this file so both the stats path and the award
// path agree on what "today" means.
const (
	// UTCOffset is the app's fixed calendar offset.
	UTCOffset = 1 * time.Hour

	// ResetHour and ResetMinute define the 03:30 day boundary. An instant
	// exactly at 03:30:00 belongs to the new day.
	ResetHour   = 3
	ResetMinute = 30
)

// DayFormat is the wire format for logical day identifiers.
const DayFormat = "2006-01-02"

// LogicalDay resolves an instant to the app's logical day identifier
// (YYYY-MM-DD). Pure: callers pass the clock in.
func LogicalDay(now time.Time) string {
	shifted := now.UTC().Add(UTCOffset)

	minuteOfDay := shifted.Hour()*60 + shifted.Minute()
	resetMinute := ResetHour*60 + ResetMinute
	if minuteOfDay < resetMinute {
		shifted = shifted.AddDate(0, 0, -1)
	}

	return shifted.Format(DayFormat)
}

// PreviousDay returns the logical day immediately before day.
func PreviousDay(day string) string {
	return shiftDay(day, -1)
}

// NextDay returns the logical day immediately after day.
func NextDay(day string) string {
	return shiftDay(day, 1)
}

func shiftDay(day string, delta int) string {
	t, err := time.Parse(DayFormat, day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, delta).Format(DayFormat)
}

// DaysBetween returns b - a in whole logical days. Malformed input yields 0.
func DaysBetween(a, b string) int {
	ta, errA := time.Parse(DayFormat, a)
	tb, errB := time.Parse(DayFormat, b)
	if errA != nil || errB != nil {
		return 0
	}
	return int(tb.Sub(ta) / (24 * time.Hour))
}

// DayWindow returns the UTC instants at which the current logical day began
// and will end (the surrounding 03:30 GMT+1 boundaries). Used to schedule
// "last chance" reminders relative to the reset.
func DayWindow(now time.Time) (start, end time.Time) {
	day := LogicalDay(now)
	t, _ := time.Parse(DayFormat, day)
	start = time.Date(t.Year(), t.Month(), t.Day(), ResetHour, ResetMinute, 0, 0, time.UTC).Add(-UTCOffset)
	return start, start.Add(24 * time.Hour)
}
