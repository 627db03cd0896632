// Package core holds the domain model and the week bucketing policy.
//
// This file contains the calendar arithmetic everything else builds on:
// weeks start on Monday at local midnight and end on Sunday at
// 23:59:59.999. All functions are pure and keep the location of their
// input instants.
package core

import (
	"fmt"
	"time"
)

// WeekStart returns the Monday at local midnight of the week containing t.
//
// A Sunday belongs to the week that started the previous Monday, so for
// Sundays the start is six days back rather than one day forward.
func WeekStart(t time.Time) time.Time {
	var offset int
	if t.Weekday() == time.Sunday {
		offset = -6
	} else {
		offset = 1 - int(t.Weekday())
	}
	return time.Date(t.Year(), t.Month(), t.Day()+offset, 0, 0, 0, 0, t.Location())
}

// WeekEnd returns the last instant of the week containing t: the Sunday
// following WeekStart(t) at 23:59:59.999.
func WeekEnd(t time.Time) time.Time {
	ws := WeekStart(t)
	return time.Date(ws.Year(), ws.Month(), ws.Day()+6, 23, 59, 59, 999_000_000, ws.Location())
}

// SameWeek reports whether a and b fall in the same Monday-start week.
func SameWeek(a, b time.Time) bool {
	return WeekStart(a).Equal(WeekStart(b))
}

// SameDay reports whether a and b fall on the same calendar date,
// regardless of time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDate renders t as a weekday plus long date, e.g.
// "Wednesday, July 9, 2025".
func FormatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatTime renders t on a 12-hour clock, e.g. "3:04 PM".
func FormatTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatDateTime renders date and time together.
func FormatDateTime(t time.Time) string {
	return FormatDate(t) + " at " + FormatTime(t)
}

// WeekLabel renders the span of the week starting at ws, e.g. "Jul 7-13"
// when the week stays within one month and "Jul 28 - Aug 3" when it
// crosses a month boundary. Day numbers carry no leading zeros.
func WeekLabel(ws time.Time) string {
	start := WeekStart(ws)
	end := start.AddDate(0, 0, 6)
	if start.Month() == end.Month() {
		return fmt.Sprintf("%s %d-%d", start.Format("Jan"), start.Day(), end.Day())
	}
	return fmt.Sprintf("%s %d - %s %d", start.Format("Jan"), start.Day(), end.Format("Jan"), end.Day())
}
