package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/csheth/poemette/internal/logging"
	"github.com/csheth/poemette/internal/poems"
	"github.com/csheth/poemette/internal/reader"
	"github.com/csheth/poemette/internal/tui"
)

type options struct {
	font        string
	breakpoint  int
	noAltScreen bool
	noMouse     bool
	logLevel    string
	logFile     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "poemette",
		Short:        "Read a small collection of poems in the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start reading
  poemette

  # Start in the serif style with the list collapsed below 100 columns
  poemette --font serif --breakpoint 100
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.font, "font", reader.FontCursive.String(), "initial reading style (serif, allura, cursive)")
	flags.IntVar(&opts.breakpoint, "breakpoint", tui.DefaultBreakpoint, "terminal width below which the poem list becomes an overlay")
	flags.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")
	flags.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file (disabled when empty)")
	return cmd
}

// config resolves the flags into a TUI configuration.
func (o *options) config(catalog *poems.Catalog, logger zerolog.Logger) (tui.Config, error) {
	font, err := reader.ParseFontMode(o.font)
	if err != nil {
		return tui.Config{}, err
	}
	if o.breakpoint < 0 {
		return tui.Config{}, fmt.Errorf("breakpoint must not be negative, got %d", o.breakpoint)
	}
	return tui.Config{
		Catalog:    catalog,
		Font:       font,
		Breakpoint: o.breakpoint,
		Logger:     logger,
	}, nil
}

func (o *options) programOptions() []tea.ProgramOption {
	opts := []tea.ProgramOption{}
	if !o.noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if !o.noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

func run(opts *options) error {
	logger, closeLog, err := logging.New(opts.logLevel, opts.logFile)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closeLog()

	catalog, err := poems.Default()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	cfg, err := opts.config(catalog, logger)
	if err != nil {
		return err
	}

	logger.Info().
		Int("poems", catalog.Len()).
		Stringer("font", cfg.Font).
		Int("breakpoint", cfg.Breakpoint).
		Msg("starting reader")

	program := tea.NewProgram(tui.New(cfg), opts.programOptions()...)
	if _, err := program.Run(); err != nil {
		logger.Error().Err(err).Msg("program error")
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
