package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-logger/logger"
)

// Version is injected at build time with -ldflags.
var Version = "dev"

const (
	appName = "go-logger"

	appShort = "go-logger demonstrates leveled console logging with session log files"
	appLong  = `
		Writes one message per log level to the console and, unless --no-file is
		given, to <dir>/<name>.log. A log file left by a previous run is moved to
		the backup directory before the new one is created.

		Settings are read from the --config YAML file, then from LOGGER_*
		environment variables, then from flags.`

	clearShort = "Clear the console, optionally painting a background color"
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	config       string
	name         string
	dir          string
	backupDir    string
	severity     int
	fileSeverity int
	color        string
	noFile       bool
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&f.config, "config", "", "path to a YAML configuration file")
	flags.StringVar(&f.name, "name", "", "log file base name")
	flags.StringVar(&f.dir, "dir", "", "directory of the session log file")
	flags.StringVar(&f.backupDir, "backup-dir", "", "directory receiving previous log files")
	flags.IntVar(&f.severity, "severity", 0, "console severity threshold")
	flags.IntVar(&f.fileSeverity, "file-severity", 0, "log file severity threshold")
	flags.StringVar(&f.color, "color", "", "console coloring (auto, always, never)")
	flags.BoolVar(&f.noFile, "no-file", false, "log to the console only")
}

// loggerConfig merges the configuration sources; flags win.
func (f *rootFlags) loggerConfig(cmd *cobra.Command) (logger.Config, error) {
	cfg, err := logger.LoadConfig(f.config)
	if err != nil {
		return logger.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		cfg.Name = f.name
	}
	if flags.Changed("dir") {
		cfg.Dir = f.dir
	}
	if flags.Changed("backup-dir") {
		cfg.BackupDir = f.backupDir
	}
	if flags.Changed("severity") {
		cfg.Severity = logger.Threshold(f.severity)
	}
	if flags.Changed("file-severity") {
		cfg.FileSeverity = logger.Threshold(f.fileSeverity)
	}
	if flags.Changed("color") {
		cfg.Color = logger.ColorMode(f.color)
	}
	cfg.Output = cmd.OutOrStdout()
	cfg.ErrOutput = cmd.ErrOrStderr()
	return cfg, cfg.Validate()
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd constructs the root command, which runs the demo.
func rootCmd() *cobra.Command {
	flag := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),
		Long:  heredoc.Doc(appLong),
		Args:  cobra.NoArgs,

		SilenceUsage: true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flag.loggerConfig(cmd)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg)
			if err != nil {
				return err
			}
			if !flag.noFile {
				_ = log.Start()
			}
			runDemo(log, !flag.noFile)
			return log.End()
		},
	}

	flag.addFlags(cmd)
	cmd.AddCommand(
		clearCmd(flag),
		versionCmd(),
	)

	return cmd
}

func runDemo(log *logger.Logger, wantFile bool) {
	log.Print("go-logger demo")
	switch {
	case log.Recording():
		log.Infof("recording to %s", log.Path())
	case wantFile:
		log.Warnf("cannot record to %s, continuing on the console only", log.Path())
	default:
		log.Info("console only")
	}
	log.Warn("be careful")
	log.Errorf("oops: %v", "something happened")
	log.Fatal("fatal is cosmetic, the process keeps running")
	log.Debugf("severity thresholds: console=%d file=%d", log.Severity(), log.FileSeverity())

	log.Write("this line only goes to the log file")
	log.WriteError("so does this error")
	log.WriteDebug("and this debug line")
}

// clearCmd constructs the command that clears the console.
func clearCmd(flag *rootFlags) *cobra.Command {
	var background uint8

	cmd := &cobra.Command{
		Use:   "clear",
		Short: heredoc.Doc(clearShort),
		Args:  cobra.NoArgs,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flag.loggerConfig(cmd)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("background") {
				return log.SetConsoleColor(background)
			}
			return log.Clear()
		},
	}
	cmd.Flags().Uint8Var(&background, "background", 0, "background color index (0-15)")
	return cmd
}

// versionCmd constructs the command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the " + appName + " version",
		Args:  cobra.NoArgs,

		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, runtime.Version()))
		},
	}
}

// versionString formats the version metadata for display.
func versionString(version, runtimeVersion string) string {
	return version + ", Go Version: " + runtimeVersion
}
