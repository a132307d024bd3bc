package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" debug ", zerolog.InfoLevel))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning", zerolog.InfoLevel))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("ERROR", zerolog.InfoLevel))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud", zerolog.InfoLevel))
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", false)

	log.Info().Msg("dropped")
	log.Warn().Uint("raid_id", 4).Msg("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "warn", line["level"])
	assert.EqualValues(t, 4, line["raid_id"])
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", true)

	log.Info().Str("raid", "Nerub").Msg("✅ Raid créé")
	assert.Contains(t, buf.String(), "✅ Raid créé")
	assert.Contains(t, buf.String(), "raid=")
}
