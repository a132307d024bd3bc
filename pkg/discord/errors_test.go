package discord

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"raidbot/internal/domain"
	"raidbot/pkg/tz"
)

type echoT struct{}

func (echoT) T(locale, key string, data map[string]any) string {
	return fmt.Sprintf("%s|%s|%v", locale, key, data["WindowStart"])
}
func (echoT) DefaultLocale() string { return "fr" }

func TestErrorKey(t *testing.T) {
	assert.Equal(t, "errors.raid_not_found", ErrorKey(domain.ErrRaidNotFound))
	assert.Equal(t, "errors.not_manager", ErrorKey(fmt.Errorf("pick: %w", domain.ErrNotManager)))
	assert.Equal(t, "errors.TIME_CONFLICT", ErrorKey(&domain.ConflictError{Reason: domain.ReasonTimeConflict}))
	assert.Equal(t, "errors.generic", ErrorKey(errors.New("db down")))
}

func TestErrorData(t *testing.T) {
	assert.Nil(t, ErrorData(domain.ErrRaidNotFound, tz.Paris))

	start := time.Date(2025, 3, 27, 18, 0, 0, 0, time.UTC)
	data := ErrorData(&domain.ConflictError{
		Reason: domain.ReasonTimeConflict, SignupID: 4, RaidID: 9,
		WindowStart: start, WindowEnd: start.Add(3 * time.Hour),
	}, tz.Paris)
	assert.Equal(t, "27/03/2025 à 19:00", data["WindowStart"])
	assert.Equal(t, "27/03/2025 à 22:00", data["WindowEnd"])
	assert.Equal(t, uint(9), data["RaidID"])
}

func TestDomainErrorMessage(t *testing.T) {
	assert.Empty(t, DomainErrorMessage(echoT{}, "fr", nil, nil))
	assert.Equal(t, "en|errors.generic|<nil>", DomainErrorMessage(echoT{}, "en", errors.New("x"), nil))
}
