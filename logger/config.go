package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every configuration loading and validation error.
var ErrInvalidConfig = errors.New("logger configuration not valid")

// ColorMode controls console coloring.
type ColorMode string

const (
	// ColorAuto colors output only when it is a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables coloring.
	ColorNever ColorMode = "never"
)

// Config defines options for New. Zero-valued (or nil) fields take the value
// from DefaultConfig.
type Config struct {
	// Name is the log file base name, without extension.
	// Default: "MainLog"
	Name string `yaml:"name" env:"LOGGER_NAME"`
	// Dir holds the current session's log file.
	// Default: "./logs"
	Dir string `yaml:"dir" env:"LOGGER_DIR"`
	// BackupDir receives the previous session's log file on Start.
	// Default: "./logs/LogBackups"
	BackupDir string `yaml:"backupDir" env:"LOGGER_BACKUP_DIR"`
	// Severity is the console threshold: enumerable levels are shown only when
	// their severity is below it. nil selects the default; 0 hides every
	// enumerable level.
	// Default: 5
	Severity *int `yaml:"severity" env:"LOGGER_SEVERITY"`
	// FileSeverity is the same threshold for the log file.
	// Default: 5
	FileSeverity *int `yaml:"fileSeverity" env:"LOGGER_FILE_SEVERITY"`
	// Color selects console coloring.
	// Default: ColorAuto
	Color ColorMode `yaml:"color" env:"LOGGER_COLOR"`

	// Output is the console stream.
	// Default: os.Stdout
	Output io.Writer `yaml:"-"`
	// ErrOutput receives the logger's own error reports.
	// Default: os.Stderr
	ErrOutput io.Writer `yaml:"-"`
	// Now is the clock used for timestamps.
	// Default: time.Now
	Now func() time.Time `yaml:"-"`
}

// DefaultConfig returns the configuration used for unset fields.
func DefaultConfig() Config {
	return Config{
		Name:         "MainLog",
		Dir:          "./logs",
		BackupDir:    "./logs/LogBackups",
		Severity:     Threshold(5),
		FileSeverity: Threshold(5),
		Color:        ColorAuto,
		Output:       os.Stdout,
		ErrOutput:    os.Stderr,
		Now:          time.Now,
	}
}

// Threshold returns a pointer to n for the Severity and FileSeverity fields.
func Threshold(n int) *int {
	return &n
}

func (c *Config) setDefaults() {
	d := DefaultConfig()
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.Dir == "" {
		c.Dir = d.Dir
	}
	if c.BackupDir == "" {
		c.BackupDir = d.BackupDir
	}
	if c.Severity == nil {
		c.Severity = d.Severity
	}
	if c.FileSeverity == nil {
		c.FileSeverity = d.FileSeverity
	}
	if c.Color == "" {
		c.Color = d.Color
	}
	if c.Output == nil {
		c.Output = d.Output
	}
	if c.ErrOutput == nil {
		c.ErrOutput = d.ErrOutput
	}
	if c.Now == nil {
		c.Now = d.Now
	}
}

// LoadConfig builds a Config from the defaults, the YAML file at path (when
// path is not empty) and LOGGER_* environment variables, in that order.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := decodeConfigFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Validate reports every problem with the file and color settings at once.
func (c Config) Validate() error {
	var problems []string
	if c.Name == "" {
		problems = append(problems, "name is empty")
	} else if strings.ContainsAny(c.Name, `/\`) {
		problems = append(problems, "name must not contain path separators")
	}
	if c.Dir == "" {
		problems = append(problems, "dir is empty")
	}
	if c.BackupDir == "" {
		problems = append(problems, "backupDir is empty")
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		problems = append(problems, fmt.Sprintf("color %q is not one of auto, always, never", c.Color))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, ", "))
	}
	return nil
}
