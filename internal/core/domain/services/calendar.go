package services

import "time"

// WeekDates returns the seven days, Monday to Sunday, of the week containing
// now in loc. offset shifts by whole weeks: 0 is the current week, 1 the next.
func WeekDates(now time.Time, loc *time.Location, offset int) []time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	sinceMonday := (int(local.Weekday()) + 6) % 7
	monday := time.Date(local.Year(), local.Month(), local.Day()-sinceMonday+7*offset, 0, 0, 0, 0, loc)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// CurrentWeek is WeekDates with offset 0.
func CurrentWeek(now time.Time, loc *time.Location) []time.Time {
	return WeekDates(now, loc, 0)
}

// NextWeek is WeekDates with offset 1.
func NextWeek(now time.Time, loc *time.Location) []time.Time {
	return WeekDates(now, loc, 1)
}
