package main

import (
	"fmt"
	"os"
	"time"

	"textgen/cmd/textgen/form"
	"textgen/cmd/textgen/ui"
	"textgen/internal/clipboard"
	"textgen/internal/config"
	"textgen/internal/generator"
	"textgen/internal/logging"
	"textgen/internal/notify"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	delay       time.Duration
	seed        uint64
	noClipboard bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "textgen",
	Short: "Combine two concepts into a piece of creative text",
	Long: `textgen asks for two concepts, picks one of five sentence templates at
random and fills the concepts in.

Run without arguments to open the interactive form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd)

		// The interactive form owns the terminal, so it only logs to a file.
		interactive := cmd == cmd.Root()
		logger, err = logging.New(cfg.Logging, logging.Options{
			Verbose:     verbose,
			Interactive: interactive,
		})
		if err != nil {
			return err
		}
		logging.For(logger, cfg.Logging, logging.CategoryBoot).Debug("config loaded",
			zap.String("path", configPath),
			zap.Duration("delay", cfg.GetDelay()),
			zap.Uint64("seed", cfg.Seed),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Config file")
	rootCmd.PersistentFlags().DurationVar(&delay, "delay", generator.DefaultDelay, "Simulated generation delay")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for template selection (0 = random)")
	rootCmd.PersistentFlags().BoolVar(&noClipboard, "no-clipboard", false, "Never touch the system clipboard")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlagOverrides lets explicitly set flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("delay") {
		cfg.Delay = delay.String()
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if noClipboard {
		cfg.Clipboard = false
	}
}

func newGenerator() *generator.Generator {
	opts := []generator.Option{
		generator.WithDelay(cfg.GetDelay()),
		generator.WithLogger(logging.For(logger, cfg.Logging, logging.CategoryGenerator)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, generator.WithSeed(cfg.Seed))
	}
	return generator.New(opts...)
}

func clipboardWriter() clipboard.Writer {
	if !cfg.Clipboard || clipboard.Unsupported() {
		return clipboard.Discard
	}
	return clipboard.System()
}

func notificationLog() notify.Sink {
	return notify.LogSink{Logger: logging.For(logger, cfg.Logging, logging.CategoryNotify)}
}

func runInteractive() error {
	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
	return form.Run(form.Config{
		Generator:     newGenerator(),
		Clipboard:     clipboardWriter(),
		Logger:        logging.For(logger, cfg.Logging, logging.CategoryUI),
		Sink:          notificationLog(),
		Styles:        &styles,
		ToastDuration: cfg.UI.GetToastDuration(),
		MaxToasts:     cfg.UI.MaxToasts,
		ShowExamples:  cfg.UI.ShowExamples,
	})
}
