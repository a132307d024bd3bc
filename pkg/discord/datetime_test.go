package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidbot/internal/domain"
	"raidbot/pkg/tz"
)

func TestParseRaidDateTime(t *testing.T) {
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, tz.Paris)

	got, err := ParseRaidDateTime(" 27/03/2025 ", "20:30", tz.Paris, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 27, 20, 30, 0, 0, tz.Paris), got)
	_, off := got.Zone()
	assert.Equal(t, 3600, off)

	// after the spring change the same wall clock is UTC+2
	got, err = ParseRaidDateTime("03/04/2025", "20h30", tz.Paris, now)
	require.NoError(t, err)
	assert.Equal(t, 18, got.UTC().Hour())

	tests := []struct {
		name       string
		date, hour string
		want       error
	}{
		{"empty date", "", "20:30", domain.ErrInvalidDateTime},
		{"us date", "03/27/2025", "20:30", domain.ErrInvalidDateTime},
		{"bad hour", "27/03/2025", "25:00", domain.ErrInvalidDateTime},
		{"past", "19/03/2025", "20:30", domain.ErrDateTimeInPast},
		{"now", "20/03/2025", "12:00", domain.ErrDateTimeInPast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRaidDateTime(tt.date, tt.hour, tz.Paris, now)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormatRaidDateTime(t *testing.T) {
	assert.Empty(t, FormatRaidDateTime(time.Time{}, nil))
	utc := time.Date(2025, 7, 2, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "02/07/2025 à 20:00", FormatRaidDateTime(utc, nil))
	assert.Equal(t, "02/07/2025 à 18:00", FormatRaidDateTime(utc, time.UTC))
}

func TestDiscordTimestamp(t *testing.T) {
	assert.Equal(t, "<t:0:R>", DiscordTimestamp(time.Unix(0, 0), "R"))
	assert.Equal(t, "<t:1700000000:f>", DiscordTimestamp(time.Unix(1700000000, 0), "f"))
}
