package logger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// fileSink owns the session log file. A nil file means the sink is closed.
type fileSink struct {
	name      string
	dir       string
	backupDir string
	now       func() time.Time

	file *os.File
}

func newFileSink(cfg Config) *fileSink {
	return &fileSink{
		name:      cfg.Name,
		dir:       cfg.Dir,
		backupDir: cfg.BackupDir,
		now:       cfg.Now,
	}
}

func (s *fileSink) isOpen() bool {
	return s.file != nil
}

// path returns the location of the current session's log file.
func (s *fileSink) path() string {
	return filepath.Join(s.dir, s.name+".log")
}

// backupPath returns a free backup file name for a session rotated at ts.
func (s *fileSink) backupPath(ts string) (string, error) {
	base := filepath.Join(s.backupDir, s.name+"-"+ts)
	candidate := base + ".log"
	for i := 2; ; i++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s-%d.log", base, i)
	}
}

// start moves a previous session's file into the backup directory and opens
// a fresh one. It is a no-op when the sink is already open.
func (s *fileSink) start() error {
	if s.isOpen() {
		return nil
	}
	ts := dateTimeString(s.now())

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	fpath := s.path()
	if _, err := os.Stat(fpath); err == nil {
		if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
			return fmt.Errorf("failed to create backup directory: %w", err)
		}
		backup, err := s.backupPath(ts)
		if err != nil {
			return fmt.Errorf("failed to pick backup file name: %w", err)
		}
		if err := os.Rename(fpath, backup); err != nil {
			return fmt.Errorf("failed to back up previous log: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	if _, err := fmt.Fprintf(f, "=== Started %s ===\n", ts); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write start banner: %w", err)
	}
	s.file = f
	return nil
}

// end writes the shutdown banner and closes the file. The sink is closed
// afterwards even when an error is returned.
func (s *fileSink) end() error {
	if !s.isOpen() {
		return nil
	}
	f := s.file
	s.file = nil

	_, werr := fmt.Fprintf(f, "=== Shutdown %s ===\n", dateTimeString(s.now()))
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("failed to write shutdown banner: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("failed to close log file: %w", cerr)
	}
	return nil
}

// write appends line. A failed write closes the sink.
func (s *fileSink) write(line string) error {
	if !s.isOpen() {
		return nil
	}
	if _, err := s.file.WriteString(line); err != nil {
		_ = s.file.Close()
		s.file = nil
		return err
	}
	return nil
}
