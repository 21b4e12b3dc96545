package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sidepane/internal/app"
	"github.com/sadopc/sidepane/internal/config"
	"github.com/sadopc/sidepane/internal/logging"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "options":
			optionsCmd()
			return
		case "validate":
			validateCmd()
			return
		case "completion":
			completionCmd()
			return
		case "version":
			printVersion()
			return
		case "help":
			printHelp()
			return
		}
	}
	tuiCmd()
}

func printVersion() {
	fmt.Printf("sidepane %s (%s) built %s\n", version, commit, date)
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `sidepane - a resizable sidebar for the terminal

Usage:
  sidepane [flags]                    Launch TUI (interactive mode)
  sidepane <command> [args] [flags]   Run a subcommand

Commands:
  options     Print the effective sidebar options
  validate    Validate a config file
  completion  Generate shell completion scripts (bash, zsh, fish)
  version     Print version information
  help        Show this help message

TUI Flags:
  --config <path>       Config file (default ~/.config/sidepane/config.yaml)
  --direction <side>    Sidebar side: left or right
  --gutter <style>      Gutter style: line or dotted
  --theme <name>        Theme name
  --log <path>          Append debug output to a log file
  --version             Print version and exit

Run 'sidepane <command> --help' for more information about a command.
`)
}

// loadConfig reads the file named by --config, which must exist. Without
// one it falls back to the default location, where a missing or broken
// file yields the defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Load(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return config.DefaultConfig(), fmt.Errorf("config file: %w", err)
	}
	return config.LoadFile(path)
}

// configExitCode maps a loadConfig error to an exit status: 2 when the
// --config path does not exist, 1 otherwise.
func configExitCode(err error) int {
	if errors.Is(err, fs.ErrNotExist) {
		return 2
	}
	return 1
}

func tuiCmd() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	configFlag := flag.String("config", "", "Path to a config file")
	directionFlag := flag.String("direction", "", "Sidebar side: left or right")
	gutterFlag := flag.String("gutter", "", "Gutter style: line or dotted")
	themeFlag := flag.String("theme", "", "Theme name")
	logFlag := flag.String("log", "", "Append log output to this file")
	flag.Usage = printHelp
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(configExitCode(err))
	}
	applyFlags(&cfg, *directionFlag, *gutterFlag, *themeFlag, *logFlag)

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config:\n%v\n", err)
		os.Exit(2)
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	logger, closer, err := logging.Open(cfg.Log.File, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx = logging.WithLogger(ctx, logger)

	if err := runTUI(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

// applyFlags overrides cfg with the flags that were given.
func applyFlags(cfg *config.Config, direction, gutter, themeName, logFile string) {
	if direction != "" {
		cfg.Sidebar.Direction = direction
	}
	if gutter != "" {
		cfg.Sidebar.GutterStyle = gutter
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if logFile != "" {
		cfg.Log.File = logFile
		cfg.Log.Level = "debug"
	}
}

func runTUI(ctx context.Context, cfg config.Config) error {
	logger := logging.FromContext(ctx)
	logger.Info("starting", "version", version, "theme", cfg.Theme)

	model := app.New(cfg, app.WithLogger(logger))
	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("exited")
	return nil
}
