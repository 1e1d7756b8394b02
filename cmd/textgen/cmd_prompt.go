package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"textgen/internal/generator"
	"textgen/internal/widget"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
)

// promptCmd is a line-mode form for terminals where the full-screen UI is unwanted
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Ask for two concepts with simple line prompts",
	Long: `Asks for the first and second concept one line at a time, generates text,
and offers to copy it. Repeats until you decline to generate again.`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

// asker abstracts survey so the prompt loop can be tested without a terminal.
type asker interface {
	Input(message, help, current string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyAsker struct{}

func (surveyAsker) Input(message, help, current string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Help: help, Default: current}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", err
	}
	return out, nil
}

func (surveyAsker) Confirm(message string, def bool) (bool, error) {
	var out bool
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out); err != nil {
		return false, err
	}
	return out, nil
}

func runPrompt(cmd *cobra.Command, args []string) error {
	w := newHeadlessWidget(cmd.ErrOrStderr())
	err := promptLoop(cmd.Context(), surveyAsker{}, w, cmd.OutOrStdout())
	if errors.Is(err, terminal.InterruptErr) {
		return nil
	}
	return err
}

// promptLoop collects concepts, runs a generation cycle and repeats on request.
// Blank input is reported through the widget's warning and asked again.
func promptLoop(ctx context.Context, a asker, w *widget.Widget, out io.Writer) error {
	for {
		first, err := a.Input("First Concept", "e.g., artificial intelligence", w.First())
		if err != nil {
			return err
		}
		second, err := a.Input("Second Concept", "e.g., creative writing", w.Second())
		if err != nil {
			return err
		}
		w.SetFirst(first)
		w.SetSecond(second)

		fmt.Fprintln(out, "Generating...")
		if err := generateOnce(ctx, w, out, false); err != nil {
			if errors.Is(err, generator.ErrMissingInput) {
				continue
			}
			return err
		}

		copyIt, err := a.Confirm("Copy to clipboard?", false)
		if err != nil {
			return err
		}
		if copyIt {
			w.Copy()
		}

		again, err := a.Confirm("Generate again?", true)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		w.Reset()
	}
}
