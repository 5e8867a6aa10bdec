package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", FormatJSON, "study-service", &buf)
	require.NoError(t, err)

	logger.Info().Int64("member_id", 1).Msg("study created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "study-service", entry["service"])
	assert.Equal(t, "study created", entry["message"])
	assert.EqualValues(t, 1, entry["member_id"])
	assert.Contains(t, entry, "time")
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", FormatJSON, "", &buf)
	require.NoError(t, err)

	logger.Info().Msg("dropped")
	assert.Zero(t, buf.Len(), "info entry should be filtered at warn level")

	logger.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), `"service"`)
}

func TestNew_EmptyLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("", "", "svc", &buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("DEBUG", FormatConsole, "study-service", &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hello")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.False(t, strings.HasPrefix(out, "{"), "console output should not be JSON: %q", out)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", FormatJSON, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("info", "xml", "", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
