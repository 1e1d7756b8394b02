package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"textgen/internal/logging"
	"textgen/internal/notify"
	"textgen/internal/widget"

	"github.com/spf13/cobra"
)

var copyResult bool

// generateCmd runs one generation cycle without the interactive form
var generateCmd = &cobra.Command{
	Use:   "generate [first concept] [second concept]",
	Short: "Generate text from two concepts and print it",
	Long: `Runs a single generation cycle: both concepts must be non-blank, then
after the configured delay one of the five templates is filled in and printed.

Example:
  textgen generate "space exploration" "ocean mysteries"
  textgen generate --delay 0 --copy "robotics" "human emotions"`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the result to the clipboard")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := newHeadlessWidget(cmd.ErrOrStderr())
	w.SetFirst(args[0])
	w.SetSecond(args[1])
	return generateOnce(ctx, w, cmd.OutOrStdout(), copyResult)
}

// newHeadlessWidget builds a widget whose notifications are printed to errOut.
func newHeadlessWidget(errOut io.Writer) *widget.Widget {
	return widget.New(
		widget.WithGenerator(newGenerator()),
		widget.WithClipboard(clipboardWriter()),
		widget.WithSink(headlessSink(errOut)),
		widget.WithLogger(logging.For(logger, cfg.Logging, logging.CategoryWidget)),
	)
}

// headlessSink prints notifications to errOut. Without a log file the log
// also goes to stderr, so notifications are not logged a second time.
func headlessSink(errOut io.Writer) notify.Sink {
	if cfg.Logging.File == "" {
		return printSink(errOut)
	}
	return notify.Multi(printSink(errOut), notificationLog())
}

// generateOnce runs a cycle on w, prints the output and optionally copies it.
func generateOnce(ctx context.Context, w *widget.Widget, out io.Writer, copyIt bool) error {
	if _, err := w.Run(ctx); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Fprintln(out, w.Output())
	if copyIt {
		w.Copy()
	}
	return nil
}

// printSink writes "[Title] Description" lines, the terminal stand-in for toasts.
func printSink(out io.Writer) notify.Sink {
	return notify.Func(func(n notify.Notification) {
		fmt.Fprintf(out, "[%s] %s\n", n.Title, n.Description)
	})
}
