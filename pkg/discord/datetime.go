package discord

import (
	"strconv"
	"strings"
	"time"

	"raidbot/internal/domain"
	"raidbot/pkg/tz"
)

// ParseRaidDateTime parses date (JJ/MM/AAAA) and time (HH:MM) as wall clock in
// loc. Returns a domain error if the format is invalid or if the date/time is
// not after now.
func ParseRaidDateTime(dateStr, timeStr string, loc *time.Location, now time.Time) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	timeStr = strings.TrimSpace(timeStr)
	if dateStr == "" || timeStr == "" {
		return time.Time{}, domain.ErrInvalidDateTime
	}
	tDate, err := time.Parse("02/01/2006", dateStr)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDateTime
	}
	tTime, err := time.Parse("15:04", strings.ReplaceAll(timeStr, "h", ":"))
	if err != nil {
		return time.Time{}, domain.ErrInvalidDateTime
	}
	dt := time.Date(tDate.Year(), tDate.Month(), tDate.Day(),
		tTime.Hour(), tTime.Minute(), 0, 0, tz.Or(loc))
	if !dt.After(now) {
		return time.Time{}, domain.ErrDateTimeInPast
	}
	return dt, nil
}

func FormatRaidDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Or(loc)).Format("02/01/2006 à 15:04")
}

// DiscordTimestamp renders t as a Discord timestamp tag, shown in each
// reader's own zone. style is one of t, T, d, D, f, F, R.
func DiscordTimestamp(t time.Time, style string) string {
	return "<t:" + strconv.FormatInt(t.Unix(), 10) + ":" + style + ">"
}
