// Package cycle computes the weekly scheduling period ("lockout") a timestamp
// belongs to. Windows are anchored on a weekday and hour in a fixed location
// and are half-open: [Start, End).
package cycle

import (
	"fmt"
	"time"
)

// Window is one scheduling period.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls in [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Equal compares instants, ignoring locations.
func (w Window) Equal(o Window) bool {
	return w.Start.Equal(o.Start) && w.End.Equal(o.End)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}

// Calculator maps timestamps to windows. The zero value is not usable; build
// one with New.
type Calculator struct {
	weekday time.Weekday
	hour    int
	loc     *time.Location
}

// New returns a Calculator anchored on weekday at hour:00 in loc.
func New(weekday time.Weekday, hour int, loc *time.Location) (*Calculator, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return nil, fmt.Errorf("cycle: invalid anchor weekday %d", weekday)
	}
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("cycle: invalid anchor hour %d", hour)
	}
	if loc == nil {
		return nil, fmt.Errorf("cycle: location is required")
	}
	return &Calculator{weekday: weekday, hour: hour, loc: loc}, nil
}

// Location returns the anchor location.
func (c *Calculator) Location() *time.Location { return c.loc }

// Anchor returns the anchor weekday and hour.
func (c *Calculator) Anchor() (time.Weekday, int) { return c.weekday, c.hour }

// WindowContaining returns the window t belongs to.
//
// All arithmetic is done on the wall clock of the anchor location, so a window
// spanning a DST change is 167h or 169h long but always starts and ends on the
// anchor weekday and hour.
func (c *Calculator) WindowContaining(t time.Time) Window {
	lt := t.In(c.loc)
	back := (int(lt.Weekday()) - int(c.weekday) + 7) % 7
	start := time.Date(lt.Year(), lt.Month(), lt.Day()-back, c.hour, 0, 0, 0, c.loc)
	if start.After(lt) {
		start = time.Date(lt.Year(), lt.Month(), lt.Day()-back-7, c.hour, 0, 0, 0, c.loc)
	}
	return Window{Start: start, End: c.addWeek(start)}
}

// NextWindow returns the window right after the one containing t.
func (c *Calculator) NextWindow(t time.Time) Window {
	cur := c.WindowContaining(t)
	return Window{Start: cur.End, End: c.addWeek(cur.End)}
}

// SameWindow reports whether t1 and t2 belong to the same window.
func (c *Calculator) SameWindow(t1, t2 time.Time) bool {
	return c.WindowContaining(t1).Equal(c.WindowContaining(t2))
}

func (c *Calculator) addWeek(t time.Time) time.Time {
	lt := t.In(c.loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day()+7, c.hour, 0, 0, 0, c.loc)
}
