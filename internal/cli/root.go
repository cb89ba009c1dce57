package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dl/gofile/internal/matcher"
	"github.com/dl/gofile/internal/output"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg    Config
	v      *viper.Viper
	stdin  io.Reader
	stdout *output.Writer
	stderr io.Writer
	logger *log.Logger
	styles output.Styles
	code   int
}

// Execute runs gofile with the given arguments and returns the exit code.
func Execute(args []string) int {
	a := newApp(os.Stdin, output.NewWriter(), os.Stderr)
	return a.execute(args)
}

func newApp(stdin io.Reader, stdout *output.Writer, stderr io.Writer) *app {
	return &app{
		v:      viper.New(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: newLogger(stderr, ""),
		styles: output.NoStyles(),
	}
}

func (a *app) execute(args []string) int {
	root := a.newRootCmd()

	cfgArgs, err := LoadConfigArgs()
	if err != nil {
		a.logger.Error("config file", "err", err)
		return exitError
	}
	if len(cfgArgs) > 0 {
		// Config-file flags land before the command line so explicit flags win.
		if err := root.PersistentFlags().Parse(cfgArgs); err != nil {
			a.logger.Error("config file", "err", err)
			return exitError
		}
	}

	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return exitError
	}
	return a.code
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gofile",
		Short:         "Read and write whole files",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output: auto, always or never")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")

	a.v.SetEnvPrefix("GOFILE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlag("color", pf.Lookup("color"))
	_ = a.v.BindPFlag("log-level", pf.Lookup("log-level"))

	root.AddCommand(
		a.newCatCmd(),
		a.newPutCmd(),
		a.newCopyCmd(),
		a.newLinesCmd(),
		a.newCheckCmd(),
	)
	return root
}

// setup resolves global settings once flags are parsed.
func (a *app) setup() error {
	color, err := ParseColorMode(a.v.GetString("color"))
	if err != nil {
		return err
	}
	a.cfg.Color = color
	a.cfg.LogLevel = a.v.GetString("log-level")
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = newLogger(a.stderr, a.cfg.LogLevel)

	useColor := false
	switch a.cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = a.stdout.IsTerminal()
	}
	if useColor {
		a.styles = output.NewStyles(a.stdout)
	} else {
		a.styles = output.NoStyles()
	}
	return nil
}

func (a *app) newCatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat PATH...",
		Short: "Write files to stdout",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a.code = runCat(args, a.cfg.Text, a.stdout, a.logger)
		},
	}
	cmd.Flags().BoolVar(&a.cfg.Text, "text", false, "fail on files that are not valid UTF-8")
	return cmd
}

func (a *app) newPutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "put PATH",
		Short: "Replace a file with stdin",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a.code = runPut(args[0], a.stdin, a.cfg.Text, a.logger)
		},
	}
	cmd.Flags().BoolVar(&a.cfg.Text, "text", false, "refuse input that is not valid UTF-8")
	return cmd
}

func (a *app) newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a file, overwriting DST",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a.code = runCopy(args[0], args[1], a.logger)
		},
	}
}

func (a *app) newLinesCmd() *cobra.Command {
	var onInvalid string
	cmd := &cobra.Command{
		Use:   "lines PATH",
		Short: "Print the lines of a file, optionally filtered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.OnInvalid = InvalidLineMode(onInvalid)
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			var m matcher.Matcher
			if len(a.cfg.Patterns) > 0 {
				var err error
				m, err = matcher.NewMatcher(a.cfg.Patterns, a.cfg.Fixed, a.cfg.IgnoreCase, a.cfg.Invert)
				if err != nil {
					return err
				}
			}

			f := output.NewLineFormatter(a.styles, a.cfg.LineNumbers)
			a.code = runLines(args[0], m, f, a.cfg.OnInvalid, a.stdout, a.logger)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&a.cfg.LineNumbers, "line-number", "n", false, "prefix each line with its number")
	flags.StringArrayVarP(&a.cfg.Patterns, "regexp", "e", nil, "only print lines matching `PATTERN` (repeatable)")
	flags.BoolVarP(&a.cfg.Fixed, "fixed-strings", "F", false, "treat patterns as literal strings")
	flags.BoolVarP(&a.cfg.IgnoreCase, "ignore-case", "i", false, "match case-insensitively")
	flags.BoolVarP(&a.cfg.Invert, "invert-match", "v", false, "print lines that do not match")
	flags.StringVar(&onInvalid, "invalid", string(InvalidStop), "on a line that is not valid UTF-8: stop, skip or mark")
	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check PATH...",
		Short: "Report whether files are valid UTF-8 text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, required := a.cfg.IgnoreFile, true
			if path == "" {
				path, required = defaultIgnoreFile, false
			}
			g, err := loadIgnore(path, required)
			if err != nil {
				return err
			}

			var ign pathMatcher
			if g != nil {
				ign = g
			}
			a.code = runCheck(args, ign, a.styles, a.stdout, a.logger)
			return nil
		},
	}
	cmd.Flags().StringVar(&a.cfg.IgnoreFile, "ignore-file", "", "skip paths matching gitignore-style patterns in `FILE` (default .gofileignore)")
	return cmd
}
