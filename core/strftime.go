package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Strftime substitutes the recognized tokens in template with the calendar
// fields of t, read in t's own location:
//
//	%Y  full year        2024
//	%y  2-digit year     24
//	%m  month            03
//	%d  day of month     07
//	%H  hour (24h)       14
//	%M  minute           05
//	%S  second           09
//
// Every occurrence is replaced in one left-to-right pass, tokens tried in the
// order above. Unrecognized %x sequences and literal text pass through.
func Strftime(template string, t time.Time) string {
	if !strings.Contains(template, "%") {
		return template
	}

	r := strings.NewReplacer(
		"%Y", strconv.Itoa(t.Year()),
		"%y", fmt.Sprintf("%02d", t.Year()%100),
		"%m", fmt.Sprintf("%02d", int(t.Month())),
		"%d", fmt.Sprintf("%02d", t.Day()),
		"%H", fmt.Sprintf("%02d", t.Hour()),
		"%M", fmt.Sprintf("%02d", t.Minute()),
		"%S", fmt.Sprintf("%02d", t.Second()),
	)

	return r.Replace(template)
}

// PreviousWeekRange returns the Monday and Friday of the week before ref's week.
//
// Weeks start on Monday, and Sunday (weekday 0) closes the week: for a Sunday
// ref the result is the Monday-Friday thirteen days back. Day steps are
// calendar days, so the time of day is kept across DST changes.
func PreviousWeekRange(ref time.Time) (monday, friday time.Time) {
	diff := int(ref.Weekday()) - 1

	daysToSubtract := diff
	if diff < 0 {
		daysToSubtract = 6
	}

	monday = ref.AddDate(0, 0, -(daysToSubtract + 7))
	friday = monday.AddDate(0, 0, 4)

	return monday, friday
}

// WeeklyStamp formats last week's Monday-Friday span as "<monday>-<friday>".
func WeeklyStamp(template string, ref time.Time) string {
	monday, friday := PreviousWeekRange(ref)
	return Strftime(template, monday) + "-" + Strftime(template, friday)
}
