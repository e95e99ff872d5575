package services

import "time"

// WeekEndingLayout is the canonical YYYY-MM-DD form week_ending values are
// stored and compared in.
const WeekEndingLayout = "2006-01-02"

// WeekEnding returns the week-ending Saturday for t: the next Saturday, or
// t's own date when t already falls on a Saturday. The result is truncated
// to midnight in t's location.
func WeekEnding(t time.Time) time.Time {
	days := (int(time.Saturday) - int(t.Weekday()) + 7) % 7
	d := t.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// LastNWeekEndings returns the current week-ending Saturday followed by the
// n-1 Saturdays before it, newest first. These feed the week selector on
// the cost entry form.
func LastNWeekEndings(t time.Time, n int) []time.Time {
	current := WeekEnding(t)
	weeks := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		weeks = append(weeks, current.AddDate(0, 0, -7*i))
	}
	return weeks
}

// FormatWeekEnding renders a week-ending date in its canonical stored form.
func FormatWeekEnding(t time.Time) string {
	return t.Format(WeekEndingLayout)
}
