// Package commands is the genko command tree.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/genko/editor"
	"github.com/iw2rmb/genko/internal/config"
	"github.com/iw2rmb/genko/internal/logging"
	"github.com/iw2rmb/genko/internal/sysclip"
	"github.com/iw2rmb/genko/store"
)

// env carries what every subcommand needs. Fields left nil are filled from
// the config file in the root's PersistentPreRunE.
type env struct {
	cfg   config.Config
	log   *slog.Logger
	store *store.Store
	clip  editor.Clipboard

	// run drives the editor program; replaced in tests.
	run func(tea.Model) (tea.Model, error)

	closer io.Closer
}

func New() *cobra.Command {
	return newRoot(&env{})
}

func newRoot(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "genko",
		Short:         "Write on manuscript paper in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if e.closer != nil {
				return e.closer.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd, e)
	return cmd
}

func AddCommands(topLevel *cobra.Command, e *env) {
	addEdit(topLevel, e)
	addExport(topLevel, e)
	addCopy(topLevel, e)
	addList(topLevel, e)
	addRemove(topLevel, e)
	addVersion(topLevel)
}

func (e *env) setup() error {
	if e.clip == nil {
		e.clip = sysclip.Clipboard{}
	}
	if e.run == nil {
		e.run = runProgram
	}
	if e.store != nil {
		if e.log == nil {
			e.log = slog.New(slog.DiscardHandler)
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "file", cfg.File, "path", cfg.Path)

	e.cfg = cfg
	e.log = logger
	e.closer = closer
	e.store = store.New(cfg.Path, logger)
	return nil
}

func runProgram(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
}

var (
	okColor   = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed, color.Bold)
	headColor = color.New(color.Bold)
)

func printOK(w io.Writer, format string, a ...any) {
	_, _ = okColor.Fprintf(w, format+"\n", a...)
}

func printErr(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, errColor.Sprint("error:"), err)
}
