package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oakwood-commons/column/internal/config"
	"github.com/oakwood-commons/column/internal/limiter"
	"github.com/oakwood-commons/column/pkg/column"
	"github.com/oakwood-commons/column/pkg/logger"
	"github.com/oakwood-commons/column/pkg/settings"
	"github.com/oakwood-commons/column/pkg/terminal"
)

// errShowHelp is returned when there is nothing to read and help was shown.
var errShowHelp = errors.New("no input provided")

type rootOptions struct {
	command    string
	configFile string
	debug      bool
	rawMode    int
	width      int
	padding    int
	indent     string
	newline    string
	limits     limiter.Config

	mode   *column.OptionFlags
	stdout column.Terminal
	stdin  func() bool
	ctx    context.Context
}

func newRootCmd(stdout column.Terminal, stdinIsTTY func() bool) *cobra.Command {
	o := &rootOptions{
		stdout: stdout,
		stdin:  stdinIsTTY,
		ctx:    context.Background(),
	}

	cmd := &cobra.Command{
		Use:   settings.CliBinaryName + " [file...]",
		Short: "Display a list of items in columns",
		Long: `Reads one item per line from the given files (or standard input) and
prints them arranged in columns that fit the terminal width.

The layout comes from column.ui and column.<command> in the config file,
then from --raw-mode and --mode/--no-mode. Styles are comma or space
separated: always, never, auto, column, row, plain.`,
		Example: "  seq 1 24 | column --mode=column --padding=5\n" +
			"  ls | column --mode=row --width=60 --indent='  '\n" +
			"  git branch --format='%(refname:short)' | column --command=branch",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			run := settings.NewCliParams()
			// --debug maps to zap.DebugLevel (-1), otherwise InfoLevel (0)
			if o.debug {
				run.MinLogLevel = -1
			}
			lgr := logger.Get(run.MinLogLevel)
			lgr = logger.WithValues(lgr, logger.CommandKey, cmd.Name())
			o.ctx = settings.IntoContext(logger.WithLogger(context.Background(), lgr), run)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := o.run(cmd, args)
			if errors.Is(err, errShowHelp) {
				return cmd.Help()
			}
			return err
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&o.command, "command", "", "look up layout in column.<command> on top of column.ui")
	o.mode = column.AddFlags(fs, "mode", o.stdout.IsTerminal)
	fs.IntVar(&o.rawMode, "raw-mode", 0, "layout as a packed integer (low 4 bits layout, 0x10 enabled, 0x20 enabled-set, 0x100 option-given)")
	fs.IntVar(&o.width, "width", 0, "maximum output width (0 = terminal width)")
	fs.IntVar(&o.padding, "padding", 1, "spaces between columns")
	fs.StringVar(&o.indent, "indent", "", "string written at the start of each row")
	fs.StringVar(&o.newline, "nl", "", `string written at the end of each row (default "\n")`)
	fs.IntVar(&o.limits.Limit, "limit", 0, "show only the first N items (0 = all)")
	fs.IntVar(&o.limits.Offset, "offset", 0, "skip the first N items")
	fs.IntVar(&o.limits.Tail, "tail", 0, "show only the last N items; cannot be combined with --limit")
	cmd.PersistentFlags().StringVar(&o.configFile, "config-file", "", "path to a YAML or TOML config file")
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "write debug logs to stderr")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	lgr := logger.FromContext(o.ctx)
	if err := o.limits.Validate(); err != nil {
		return err
	}

	ctx := o.ctx
	run, ok := settings.FromContext(ctx)
	if !ok {
		run = settings.NewCliParams()
		ctx = settings.IntoContext(ctx, run)
	}
	run.Command = o.command
	run.ConfigFile = resolveConfigPath(o.configFile)
	run.StdoutIsTTY = o.stdout.IsTerminal()

	cfg, err := loadMergedConfig(run.ConfigFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	lgr.V(1).Info("loaded config", logger.ConfigKey, run.ConfigFile)

	mode, opts, err := o.resolveLayout(ctx, cmd.Flags(), cfg)
	if err != nil {
		return err
	}
	lgr.V(1).Info("resolved column mode", "mode", mode.String(), "bits", mode.Bits(),
		"explicit", mode.ExplicitlyEnabled())

	if len(args) == 0 && cmd.InOrStdin() == os.Stdin && o.stdin != nil && o.stdin() {
		return errShowHelp
	}
	items, err := readItems(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if o.limits.IsActive() {
		lgr.V(1).Info("limiting items", "total", len(items), "limit", o.limits.Limit,
			"offset", o.limits.Offset, "tail", o.limits.Tail)
		items = o.limits.Apply(items)
	}

	column.New(column.WithOutput(cmd.OutOrStdout()), column.WithTerminal(o.stdout)).
		Print(ctx, items, mode, &opts)
	return nil
}

// resolveLayout layers defaults, config, --raw-mode and --mode/--no-mode.
// The command and tty answer come from the run settings in ctx.
func (o *rootOptions) resolveLayout(ctx context.Context, fs *pflag.FlagSet, cfg config.File) (column.Mode, column.Options, error) {
	run, ok := settings.FromContext(ctx)
	if !ok {
		run = settings.NewCliParams()
	}
	mode, err := cfg.Mode(column.Mode{}, run.Command, run.StdoutIsTTY)
	if err != nil {
		return mode, column.Options{}, err
	}
	if fs.Changed("raw-mode") {
		if o.rawMode < 0 {
			return mode, column.Options{}, fmt.Errorf("--raw-mode: %w: negative value %d", column.ErrInvalidMode, o.rawMode)
		}
		if uint64(o.rawMode) > math.MaxUint32 {
			return mode, column.Options{}, fmt.Errorf("--raw-mode: %w: %d is out of range", column.ErrInvalidMode, o.rawMode)
		}
		mode, err = column.ModeFromBits(uint32(o.rawMode))
		if err != nil {
			return mode, column.Options{}, fmt.Errorf("--raw-mode: %w", err)
		}
	}
	if err := o.mode.Apply(&mode); err != nil {
		return mode, column.Options{}, err
	}

	opts := cfg.Options(column.DefaultOptions())
	if fs.Changed("width") {
		opts.Width = o.width
	}
	if fs.Changed("padding") {
		if o.padding < 0 {
			return mode, opts, fmt.Errorf("--padding must not be negative, got %d", o.padding)
		}
		opts.Padding = o.padding
	}
	if fs.Changed("indent") {
		opts.Indent = o.indent
	}
	if fs.Changed("nl") {
		opts.Newline = o.newline
	}
	return mode, opts, nil
}

// readItems returns one item per input line. "-" or no files reads in.
func readItems(in io.Reader, files []string) ([]string, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var items []string
	for _, name := range files {
		var data []byte
		var err error
		if name == "-" {
			data, err = io.ReadAll(in)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		items = append(items, splitLines(string(data))...)
	}
	return items, nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v := settings.VersionInformation
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
				settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime)
		},
	}
}

// Execute runs the column command against the process's stdio.
func Execute() error {
	stdin := terminal.New(os.Stdin)
	return newRootCmd(terminal.Stdout(), stdin.IsTerminal).Execute()
}
