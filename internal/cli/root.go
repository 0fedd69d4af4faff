package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"combo/internal/combo"
	"combo/internal/config"
	"combo/internal/ui"
	"combo/pkg/logger"
	"combo/pkg/settings"
)

// ErrCancelled is returned when the user quits without choosing
var ErrCancelled = errors.New("cancelled")

// rootFlags holds the root command's flag values
type rootFlags struct {
	placeholder string
	search      bool
	selectValue string
	keepOpen    bool
	noMouse     bool
	top         int
	height      int
	logFile     string
	logLevel    string

	run *settings.Run
}

// NewRootCommand builds the combo command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootFlags{run: settings.NewCliParams()})
}

func newRootCommand(flags *rootFlags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   settings.CliBinaryName + " [file]",
		Short: "Pick one value from a list in the terminal",
		Long: "combo shows a searchable single-select combobox in the terminal and prints\n" +
			"the chosen value. Options come from a TOML, YAML or JSON file, or one per\n" +
			"line on stdin as \"value<TAB>text\" or just \"text\".",
		Example: "  combo fruits.toml\n" +
			"  ls | combo --search --placeholder 'Pick a file'\n" +
			"  printf 'a\\tApple\\nb\\tBanana\\n' | combo --select b",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logger.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			flags.run.MinLogLevel = level
			flags.run.LogFile = flags.logFile
			lgr, err := logger.Get(flags.run.MinLogLevel, flags.run.LogFile)
			if err != nil {
				return err
			}
			l := lgr.WithValues("command", cmd.Name())
			cmd.SetContext(logger.WithLogger(cmd.Context(), &l))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, flags, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.logFile, "log-file", "", "write JSON logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn, error or a number (-2 for verbose)")

	f := rootCmd.Flags()
	f.StringVar(&flags.placeholder, "placeholder", "", "label shown while nothing is selected")
	f.BoolVarP(&flags.search, "search", "s", false, "show a filter input when the list opens")
	f.StringVar(&flags.selectValue, "select", "", "value selected at start")
	f.BoolVar(&flags.keepOpen, "keep-open", false, "do not exit after a selection; esc prints the selection")
	f.BoolVar(&flags.noMouse, "no-mouse", false, "disable mouse support")
	f.IntVar(&flags.top, "top", 0, "blank rows above the widget")
	f.IntVar(&flags.height, "height", 0, "visible option rows (default from config)")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

func runPicker(cmd *cobra.Command, flags *rootFlags, args []string) error {
	log := logger.FromContext(cmd.Context())

	piped := stdinIsPiped()
	cfg, err := loadConfig(config.NewConfigService(*log), args, cmd.InOrStdin(), piped)
	if err != nil {
		return err
	}
	applyFlags(cmd, flags, cfg)
	flags.run.Mouse = cfg.UISettings.Mouse
	flags.run.KeepOpen = cfg.UISettings.KeepOpen
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.OptionCount() == 0 {
		return errors.New("no options to pick from")
	}

	c := combo.New(combo.Options{
		Placeholder: cfg.Placeholder,
		Searchable:  cfg.Search,
		Logger:      log.WithName("combo"),
	})
	config.Apply(cfg, c)

	m := ui.NewModel(c, ui.Options{
		Top:          cfg.UISettings.Top,
		Width:        cfg.UISettings.Width,
		ListHeight:   cfg.UISettings.Height,
		QuitOnSelect: !flags.run.KeepOpen,
		Logger:       *log,
	})

	opts := programOptions(piped, flags.run.Mouse)
	log.V(1).Info("starting picker", "options", cfg.OptionCount(), "piped", piped)

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}

	model, ok := final.(*ui.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	value, ok := model.Result()
	if !ok {
		return ErrCancelled
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// loadConfig reads the options from the file argument, piped stdin, or
// the default config file, in that order
func loadConfig(cs config.ConfigService, args []string, stdin io.Reader, piped bool) (*config.Config, error) {
	if len(args) == 1 {
		return cs.LoadFromPath(args[0])
	}
	if piped {
		entries, err := config.ParseLines(stdin)
		if err != nil {
			return nil, err
		}
		cfg := config.DefaultConfig()
		cfg.Options = entries
		return cfg, nil
	}
	return cs.Load()
}

// applyFlags lets explicitly set flags override the loaded config
func applyFlags(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("placeholder") {
		cfg.Placeholder = flags.placeholder
	}
	if changed("search") {
		cfg.Search = flags.search
	}
	if changed("select") {
		cfg.Select = flags.selectValue
	}
	if changed("keep-open") {
		cfg.UISettings.KeepOpen = flags.keepOpen
	}
	if changed("no-mouse") {
		cfg.UISettings.Mouse = !flags.noMouse
	}
	if changed("top") {
		cfg.UISettings.Top = flags.top
	}
	if changed("height") {
		cfg.UISettings.Height = flags.height
	}
}

// programOptions renders on stderr so stdout only carries the result, and
// reads keys from the terminal when stdin carries the options
func programOptions(piped, mouse bool) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithOutput(os.Stderr)}
	if piped {
		opts = append(opts, tea.WithInputTTY())
	}
	if mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	return opts
}

func stdinIsPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}
