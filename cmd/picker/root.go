package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v3"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xqrs/picker"
	"github.com/xqrs/picker/help"
	"github.com/xqrs/picker/internal/config"
	"github.com/xqrs/picker/internal/logging"
	"github.com/xqrs/picker/internal/termout"
)

// ErrCancelled is returned when the picker is closed without a choice.
var ErrCancelled = errors.New("cancelled")

const defaultWidth = 80

type options struct {
	configFile string
	title      string
	selected   int
	width      int
	print      bool
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "picker [flags] [item...]",
		Short: "Pick one option from a numbered list",
		Long: `Pick one option from a numbered list.

Options come from the arguments or from a YAML or TOML file given with
--config. The chosen label is printed to stdout. With --print, or when
stdout is not a terminal, every option is printed wrapped to --width
instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML or TOML file with title and items")
	flags.StringVarP(&opts.title, "title", "t", "", "title shown above the options")
	flags.IntVarP(&opts.selected, "selected", "s", 0, "zero-based index of the initially selected option")
	flags.IntVarP(&opts.width, "width", "w", 0, "render width in print mode (default: terminal width)")
	flags.BoolVarP(&opts.print, "print", "p", false, "print all options instead of picking one")
	flags.StringVar(&opts.logFile, "log-file", "", "append diagnostic logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (default: $"+logging.LevelEnv+" or info)")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := resolveConfig(cmd, opts, args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	out := cmd.OutOrStdout()
	logger.WithFields(logrus.Fields{
		"items":    len(cfg.Items),
		"selected": cfg.Selected,
	}).Debug("config resolved")

	if opts.print || !isTerminal(out) {
		width := cfg.Width
		if width == 0 {
			width = terminalWidth(out)
		}
		logger.WithField("width", width).Debug("printing options")
		return printOptions(newOutputWriter(out), cfg, width)
	}

	index, err := pick(picker.NewApplication(), cfg)
	if err != nil {
		logger.WithError(err).Debug("picker closed")
		return err
	}
	logger.WithField("index", index).Info("option picked")
	_, err = fmt.Fprintln(out, cfg.Items[index])
	return err
}

// resolveConfig merges the option file, the flags, and the arguments. Flags
// override file values and arguments replace the file's items.
func resolveConfig(cmd *cobra.Command, opts *options, args []string) (*config.Config, error) {
	cfg := &config.Config{}
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Title = opts.title
	}
	if flags.Changed("selected") {
		cfg.Selected = opts.selected
	}
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if len(args) > 0 {
		cfg.Items = args
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logrus.Entry, func() error, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	sink, closeSink, err := logging.OpenSink(cfg.Log.File, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return logging.NewLogger("picker", logging.WithOutput(sink), logging.WithLevel(level)), closeSink, nil
}

// printOptions writes every option as a wrapped selection row.
func printOptions(w *termout.Writer, cfg *config.Config, width int) error {
	if cfg.Title != "" {
		if err := w.WriteLines([]picker.Line{picker.NewLine(cfg.Title, tcell.StyleDefault.Bold(true))}); err != nil {
			return err
		}
	}
	for index, item := range cfg.Items {
		row := picker.NewSelectionRow(index, item, index == cfg.Selected)
		if err := w.WriteLines(row.Lines(width)); err != nil {
			return err
		}
	}
	return nil
}

// pick runs the interactive picker and returns the chosen index.
func pick(app *picker.Application, cfg *config.Config) (int, error) {
	chosen := -1
	list := picker.NewSelectionList()
	list.SetItems(cfg.Items...).SetCursor(cfg.Selected)
	list.SetFooter(help.New(list))
	list.SetTitle(cfg.Title)
	list.SetSelectedFunc(func(index int, _ string) picker.Command {
		chosen = index
		return picker.QuitCommand{}
	})
	list.SetCancelledFunc(func() picker.Command {
		return picker.QuitCommand{}
	})

	root := newPopup(list, cfg.Width)
	if err := app.SetRoot(root).Run(); err != nil {
		return -1, err
	}
	if chosen < 0 {
		return -1, ErrCancelled
	}
	return chosen, nil
}

func newOutputWriter(out io.Writer) *termout.Writer {
	if f, ok := out.(*os.File); ok {
		return termout.NewEnvWriter(f)
	}
	return termout.NewWriter(out, termenv.Ascii)
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func terminalWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}
