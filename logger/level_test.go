package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelProfiles(t *testing.T) {
	tests := []struct {
		level      Level
		fg         uint8
		enumerable bool
		prefix     string
		severity   int
	}{
		{PrintLevel, 7, true, "", 0},
		{InfoLevel, 15, true, "| [INFO]  ", 1},
		{WarnLevel, 14, true, "| [WARN]  ", 2},
		{ErrorLevel, 4, true, "| [ERROR] ", 3},
		{FatalLevel, 12, true, "| [FATAL] ", 4},
		{DebugLevel, 10, false, "| [DEBUG] ", 5},
	}

	for _, tc := range tests {
		p := tc.level.Profile()
		assert.Equal(t, tc.fg, p.Fg, tc.level.String())
		assert.Equal(t, uint8(0), p.Bg, tc.level.String())
		assert.Equal(t, tc.enumerable, p.Enumerable, tc.level.String())
		assert.True(t, p.Writable, tc.level.String())
		assert.Equal(t, tc.prefix, p.Prefix, tc.level.String())
		assert.Equal(t, "\n", p.Suffix, tc.level.String())
		assert.Equal(t, tc.severity, p.Severity, tc.level.String())
	}
}

func TestLevelProfile_IsACopy(t *testing.T) {
	p := InfoLevel.Profile()
	p.Prefix = "changed"
	p.Severity = 99

	assert.Equal(t, "| [INFO]  ", InfoLevel.Profile().Prefix)
	assert.Equal(t, 1, InfoLevel.Profile().Severity)
}

func TestLevelProfile_Unknown(t *testing.T) {
	assert.Equal(t, PrintLevel.Profile(), Level(42).Profile())
	assert.Equal(t, PrintLevel.Profile(), Level(-1).Profile())
}

func TestLevelStrings(t *testing.T) {
	assert.Equal(t, "PRINT", PrintLevel.String())
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "WARN", WarnLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "FATAL", FatalLevel.String())
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "Level(999)", Level(999).String())
	assert.Len(t, AllLevels(), 6)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"print":   PrintLevel,
		"INFO":    InfoLevel,
		"warn":    WarnLevel,
		"Warning": WarnLevel,
		"error":   ErrorLevel,
		"ERR":     ErrorLevel,
		" fatal ": FatalLevel,
		"debug":   DebugLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	require.ErrorIs(t, err, ErrInvalidLevel)
}

func TestTimestamps(t *testing.T) {
	morning := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	evening := time.Date(2026, time.December, 31, 23, 59, 58, 0, time.UTC)

	assert.Equal(t, "2026-01-02 03;04;05 AM", dateTimeString(morning))
	assert.Equal(t, "03;04;05 AM", timeString(morning))
	assert.Equal(t, "2026-12-31 23;59;58 PM", dateTimeString(evening))
	assert.Equal(t, "23;59;58 PM", timeString(evening))
}
