package cycle

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paris(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return loc
}

func newCalc(t *testing.T) (*Calculator, *time.Location) {
	t.Helper()
	loc := paris(t)
	c, err := New(time.Wednesday, 5, loc)
	require.NoError(t, err)
	return c, loc
}

func TestWindowContaining(t *testing.T) {
	c, loc := newCalc(t)
	at := func(y int, m time.Month, d, h, mi int) time.Time {
		return time.Date(y, m, d, h, mi, 0, 0, loc)
	}

	tests := []struct {
		name      string
		t         time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"mid week", at(2026, time.October, 18, 12, 0), at(2026, time.October, 14, 5, 0), at(2026, time.October, 21, 5, 0)},
		{"exactly on anchor", at(2026, time.October, 21, 5, 0), at(2026, time.October, 21, 5, 0), at(2026, time.October, 28, 5, 0)},
		{"one minute before anchor", at(2026, time.October, 21, 4, 59), at(2026, time.October, 14, 5, 0), at(2026, time.October, 21, 5, 0)},
		{"anchor day after anchor hour", at(2026, time.October, 21, 23, 30), at(2026, time.October, 21, 5, 0), at(2026, time.October, 28, 5, 0)},
		{"autumn DST change", at(2026, time.October, 25, 2, 30), at(2026, time.October, 21, 5, 0), at(2026, time.October, 28, 5, 0)},
		{"spring DST change", at(2026, time.March, 29, 3, 30), at(2026, time.March, 25, 5, 0), at(2026, time.April, 1, 5, 0)},
		{"year boundary", at(2026, time.December, 31, 10, 0), at(2026, time.December, 30, 5, 0), at(2027, time.January, 6, 5, 0)},
		{"new year day", at(2026, time.January, 1, 0, 0), at(2025, time.December, 31, 5, 0), at(2026, time.January, 7, 5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := c.WindowContaining(tt.t)
			assert.True(t, w.Start.Equal(tt.wantStart), "start: got %s want %s", w.Start, tt.wantStart)
			assert.True(t, w.End.Equal(tt.wantEnd), "end: got %s want %s", w.End, tt.wantEnd)
			assert.True(t, w.Contains(tt.t))
		})
	}
}

func TestWindowContaining_UTCInput(t *testing.T) {
	c, loc := newCalc(t)
	// 03:30 UTC on a Wednesday in summer is 05:30 in Paris: already in the new window.
	w := c.WindowContaining(time.Date(2026, time.July, 1, 3, 30, 0, 0, time.UTC))
	assert.True(t, w.Start.Equal(time.Date(2026, time.July, 1, 5, 0, 0, 0, loc)))

	// 03:30 UTC on a Wednesday in winter is 04:30 in Paris: still the previous window.
	w = c.WindowContaining(time.Date(2026, time.January, 7, 3, 30, 0, 0, time.UTC))
	assert.True(t, w.Start.Equal(time.Date(2025, time.December, 31, 5, 0, 0, 0, loc)))
}

func TestWindowDurationAcrossDST(t *testing.T) {
	c, loc := newCalc(t)

	autumn := c.WindowContaining(time.Date(2026, time.October, 26, 12, 0, 0, 0, loc))
	assert.Equal(t, 169*time.Hour, autumn.End.Sub(autumn.Start))

	spring := c.WindowContaining(time.Date(2026, time.March, 30, 12, 0, 0, 0, loc))
	assert.Equal(t, 167*time.Hour, spring.End.Sub(spring.Start))

	regular := c.WindowContaining(time.Date(2026, time.June, 10, 12, 0, 0, 0, loc))
	assert.Equal(t, 7*24*time.Hour, regular.End.Sub(regular.Start))
}

func TestWindowInvariants(t *testing.T) {
	c, loc := newCalc(t)
	from := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 2, 0)

	for ts := from; ts.Before(to); ts = ts.Add(97 * time.Minute) {
		w := c.WindowContaining(ts)
		require.False(t, ts.Before(w.Start), "t=%s before start %s", ts, w.Start)
		require.True(t, ts.Before(w.End), "t=%s not before end %s", ts, w.End)

		ls, le := w.Start.In(loc), w.End.In(loc)
		require.Equal(t, time.Wednesday, ls.Weekday())
		require.Equal(t, 5, ls.Hour())
		require.Equal(t, 0, ls.Minute())
		require.True(t, le.Equal(ls.AddDate(0, 0, 7)), "window %s is not one week", w)

		require.True(t, c.SameWindow(ts, ts))
		require.True(t, c.SameWindow(ts, w.Start))
		require.False(t, c.SameWindow(ts, w.End))
	}
}

func TestNextWindow(t *testing.T) {
	c, loc := newCalc(t)
	ts := time.Date(2026, time.October, 24, 20, 0, 0, 0, loc)

	cur := c.WindowContaining(ts)
	next := c.NextWindow(ts)
	assert.True(t, next.Start.Equal(cur.End))
	assert.True(t, next.End.Equal(time.Date(2026, time.November, 4, 5, 0, 0, 0, loc)))
	assert.True(t, c.WindowContaining(next.Start).Equal(next))
}

func TestSameWindowSymmetric(t *testing.T) {
	c, loc := newCalc(t)
	a := time.Date(2026, time.October, 14, 21, 0, 0, 0, loc)
	b := time.Date(2026, time.October, 20, 23, 0, 0, 0, loc)
	d := time.Date(2026, time.October, 21, 20, 0, 0, 0, loc)

	assert.True(t, c.SameWindow(a, b))
	assert.True(t, c.SameWindow(b, a))
	assert.False(t, c.SameWindow(a, d))
	assert.False(t, c.SameWindow(d, a))
}

func TestNew_InvalidAnchor(t *testing.T) {
	loc := paris(t)
	_, err := New(time.Weekday(9), 5, loc)
	assert.Error(t, err)
	_, err = New(time.Wednesday, 24, loc)
	assert.Error(t, err)
	_, err = New(time.Wednesday, 5, nil)
	assert.Error(t, err)
}
