package logger

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLogging_Session(t *testing.T) {
	log := newTestLogger(t)

	require.NoError(t, log.Start())
	assert.True(t, log.Recording())
	log.Info("hello")
	require.NoError(t, log.End())
	assert.False(t, log.Recording())

	lines := strings.Split(strings.TrimSuffix(log.fileContent(t), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "=== Started "+testStamp+" ===", lines[0])
	assert.Regexp(t, regexp.MustCompile(`^\| \[INFO\]  \[\d\d;\d\d;\d\d (AM|PM)\] hello$`), lines[1])
	assert.Equal(t, "=== Shutdown "+testStamp+" ===", lines[2])
}

func TestFileLogging_StartTwice(t *testing.T) {
	log := newTestLogger(t)

	require.NoError(t, log.Start())
	require.NoError(t, log.Start())
	require.NoError(t, log.End())

	content := log.fileContent(t)
	assert.Equal(t, 1, strings.Count(content, "=== Started"))
	assert.NoDirExists(t, filepath.Join(log.dir, "logs", "LogBackups"))

	entries, err := os.ReadDir(filepath.Join(log.dir, "logs"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileLogging_RotatesPreviousSession(t *testing.T) {
	log := newTestLogger(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(log.Path()), 0o755))
	require.NoError(t, os.WriteFile(log.Path(), []byte("previous session\n"), 0o644))

	require.NoError(t, log.Start())

	backup := filepath.Join(log.dir, "logs", "LogBackups", "Test-"+testStamp+".log")
	old, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "previous session\n", string(old))
	assert.Equal(t, "=== Started "+testStamp+" ===\n", log.fileContent(t))
}

func TestFileLogging_BackupNameCollision(t *testing.T) {
	log := newTestLogger(t)
	backupDir := filepath.Join(log.dir, "logs", "LogBackups")
	require.NoError(t, os.MkdirAll(backupDir, 0o755))
	taken := filepath.Join(backupDir, "Test-"+testStamp+".log")
	require.NoError(t, os.WriteFile(taken, []byte("first\n"), 0o644))
	require.NoError(t, os.WriteFile(log.Path(), []byte("second\n"), 0o644))

	require.NoError(t, log.Start())

	first, err := os.ReadFile(taken)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(first))
	second, err := os.ReadFile(filepath.Join(backupDir, "Test-"+testStamp+"-2.log"))
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(second))
}

func TestFileLogging_EndWithoutStart(t *testing.T) {
	log := newTestLogger(t)

	require.NoError(t, log.End())
	require.NoError(t, log.Close())

	assert.NoDirExists(t, filepath.Join(log.dir, "logs"))
	assert.Empty(t, log.errOut.String())
}

func TestFileLogging_WriteAfterEnd(t *testing.T) {
	log := newTestLogger(t)
	require.NoError(t, log.Start())
	require.NoError(t, log.End())
	before := log.fileContent(t)

	assert.NotPanics(t, func() {
		log.Write("late")
		log.Info("late console")
	})

	assert.Equal(t, before, log.fileContent(t))
	assert.Equal(t, "| [INFO]  late console\n", log.out.String())
	assert.Empty(t, log.errOut.String())
}

func TestFileLogging_StartFailure(t *testing.T) {
	log := newTestLogger(t)
	// A regular file where the log directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(log.dir, "logs"), nil, 0o644))

	err := log.Start()
	require.Error(t, err)
	assert.False(t, log.Recording())
	assert.Contains(t, log.errOut.String(), "error starting logger")

	log.Info("still on the console")
	assert.Equal(t, "| [INFO]  still on the console\n", log.out.String())
}

func TestFileLogging_WriteFailureClosesSink(t *testing.T) {
	log := newTestLogger(t)
	require.NoError(t, log.Start())
	require.NoError(t, log.sink.file.Close())

	log.Info("lost")

	assert.False(t, log.Recording())
	assert.Contains(t, log.errOut.String(), "error writing to log")
	assert.Equal(t, "| [INFO]  lost\n", log.out.String())
	require.NoError(t, log.End())
}

func TestFileLogging_FileSeverity(t *testing.T) {
	log := newTestLogger(t)
	require.NoError(t, log.Start())
	log.SetFileSeverity(2)

	log.Info("kept")
	log.Warn("dropped")

	assert.Equal(t, 2, log.FileSeverity())
	content := log.fileContent(t)
	assert.Contains(t, content, "kept")
	assert.NotContains(t, content, "dropped")
	assert.Contains(t, log.out.String(), "dropped")
}
