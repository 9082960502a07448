// Package cli implements the fstree command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fstree/fs/billy"
	"github.com/jmgilman/go/fstree/fs/core"
	"github.com/jmgilman/go/fstree/internal/config"
	"github.com/jmgilman/go/fstree/tree"
)

// Version is the CLI version, set at build time.
var Version = "dev"

// App holds the dependencies of a CLI invocation.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// FS is used to read the config file.
	FS core.ReadFS

	// Options are applied after the configured tree options.
	Options []tree.Option
}

// DefaultApp returns an App bound to the process streams and local disk.
func DefaultApp() *App {
	return &App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		FS:     billy.NewLocal(),
	}
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, args []string, app *App) int {
	root := NewRootCommand(app)
	root.SetArgs(args)

	err := fang.Execute(ctx, root,
		fang.WithVersion(Version),
		fang.WithErrorHandler(errorHandler),
	)
	return ExitCode(err)
}

// ExitCode maps an error to a process exit code. A failed archiving tool
// passes its own exit status through; every other failure exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var toolErr *tree.ExternalToolError
	if errors.As(err, &toolErr) && toolErr.ExitCode > 0 {
		return toolErr.ExitCode
	}
	return 1
}

// errorHandler prints `Unable to find "<tool>".` for a missing archiver and
// defers to fang for everything else.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var missing *tree.ToolUnavailableError
	if errors.As(err, &missing) {
		_, _ = fmt.Fprintf(w, "Unable to find \"%s\".\n", missing.Tool)
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// runtimeState is resolved once per invocation before any subcommand runs.
type runtimeState struct {
	logger *slog.Logger
	opts   []tree.Option
}

// NewRootCommand builds the fstree command tree.
func NewRootCommand(app *App) *cobra.Command {
	if app.FS == nil {
		app.FS = billy.NewLocal()
	}

	var (
		configPath  string
		logLevel    string
		rejectOther bool
		state       runtimeState
	)

	root := &cobra.Command{
		Use:   "fstree",
		Short: "Copy, archive and fingerprint directory trees",
		Long: `fstree copies directory trees, archives them with the platform archiver
(tar.exe on Windows, zip elsewhere) and computes content fingerprints.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(app.FS, configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if rejectOther {
				cfg.Walk.Other = config.OtherReject
			}

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}

			state.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			state.logger.Debug("loaded configuration", "config", cfg.String())

			state.opts = append(opts, tree.WithLogger(state.logger))
			state.opts = append(state.opts, app.Options...)
			return nil
		},
	}

	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&rejectOther, "reject-other", false, "fail on symlinks and special files instead of skipping them")

	root.AddCommand(
		newCopyCommand(&state),
		newArchiveCommand(&state),
		newHashCommand(&state),
	)

	return root
}
