package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/user/notewatch/internal/core"
)

// rootOptions carries flag values shared by all subcommands
type rootOptions struct {
	configPath string
	notesDir   string
	theme      string
	logLevel   string

	config *core.Config
	logger zerolog.Logger
	// cleanup closes the log file, if one was opened
	cleanup func()
}

// isTerminal checks if the given file is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root cobra command for the notewatch CLI
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{cleanup: func() {}}

	cmd := &cobra.Command{
		Use:     "notewatch [flags] [notes-dir]",
		Short:   "Terminal browser for a directory of markdown notes",
		Long: "notewatch browses a markdown notes directory in the terminal.\n" +
			"Long note lists stay responsive through windowed rendering: only the\n" +
			"rows near the viewport are rendered, recomputed on a throttled cadence.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  # Browse ~/notes (or the configured directory)
  notewatch

  # Browse a specific directory
  notewatch ~/wiki

  # Export every note to a static HTML site
  notewatch export --out ./site`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd, args)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			opts.cleanup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to the config file (default ~/.config/notewatch/config.yaml)")
	flags.StringVar(&opts.notesDir, "notes-dir", "", "Directory containing markdown notes")
	flags.StringVar(&opts.theme, "theme", "", "Color theme (default, dark, light)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newExportCmd(opts),
		newThemesCmd(opts),
	)
	return cmd
}

// setup loads configuration, applies flag overrides, and initializes logging
func (o *rootOptions) setup(cmd *cobra.Command, args []string) error {
	path := o.configPath
	if path == "" {
		path = core.DefaultConfigPath()
	}

	cfg, err := core.LoadConfig(path)
	if err != nil {
		return err
	}

	if o.notesDir != "" {
		cfg.NotesDir = o.notesDir
	}
	if len(args) > 0 {
		cfg.NotesDir = args[0]
	}
	if o.theme != "" {
		cfg.Theme = o.theme
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The browse TUI owns the terminal, so its logs must go to a file
	toFile := cmd.Name() == cmd.Root().Name() && isTerminal(os.Stdout)
	logger, cleanup, err := core.InitLogger(cfg, toFile)
	if err != nil {
		return err
	}

	o.config = cfg
	o.logger = logger
	o.cleanup = cleanup
	return nil
}

// Execute runs the CLI
func Execute(version string) error {
	cmd := NewRootCmd(version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
