package main

import (
	"fmt"
	"strings"

	"textgen/cmd/textgen/ui"
	"textgen/internal/generator"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var plainTemplates bool

// templatesCmd lists the sentence templates and example combinations
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Show the sentence templates and example concept pairs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		md := templatesMarkdown()
		if plainTemplates {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		style := "light"
		if ui.ThemeByName(cfg.UI.Theme).IsDark {
			style = "dark"
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		out, err := renderer.Render(md)
		if err != nil {
			return fmt.Errorf("failed to render templates: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	templatesCmd.Flags().BoolVar(&plainTemplates, "plain", false, "Print raw markdown")
}

func templatesMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Templates\n\n")
	for i, tpl := range generator.Templates() {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, strings.NewReplacer(
			generator.FirstSlot, "*first*",
			generator.SecondSlot, "*second*",
		).Replace(string(tpl)))
	}
	sb.WriteString("\n## Try these example combinations\n\n")
	for _, ex := range generator.Examples() {
		fmt.Fprintf(&sb, "- %s\n", ex)
	}
	return sb.String()
}
