package utils

import (
	"os"
	"time"
)

const DateLayout = "2006-01-02"

// Clock is the injected source of "now" for every aggregation and
// report computation, so window edges are deterministic under test.
type Clock interface {
	Now() time.Time
}

// Community timezone (IST, +05:30). Overridable via NAMA_TZ.
var defaultLoc = func() *time.Location {
	name := os.Getenv("NAMA_TZ")
	if name == "" {
		name = "Asia/Kolkata"
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

type systemClock struct {
	loc *time.Location
}

func NewSystemClock() Clock {
	return systemClock{loc: defaultLoc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// WindowEdges are the lower bounds of the standard aggregation windows
// as ISO dates. Entry dates are ISO strings too, so every window test
// is a lexicographic comparison.
type WindowEdges struct {
	Today      string
	WeekStart  string // trailing 7 days: today-6d .. today
	MonthStart string
	YearStart  string
}

func EdgesAt(now time.Time) WindowEdges {
	y, m, _ := now.Date()
	return WindowEdges{
		Today:      now.Format(DateLayout),
		WeekStart:  now.AddDate(0, 0, -6).Format(DateLayout),
		MonthStart: time.Date(y, m, 1, 0, 0, 0, 0, now.Location()).Format(DateLayout),
		YearStart:  time.Date(y, time.January, 1, 0, 0, 0, 0, now.Location()).Format(DateLayout),
	}
}

// DateOfUnix renders a unix-seconds timestamp as an ISO date in the
// clock's locale, for bucketing created_at columns.
func DateOfUnix(sec int64, now time.Time) string {
	return time.Unix(sec, 0).In(now.Location()).Format(DateLayout)
}
