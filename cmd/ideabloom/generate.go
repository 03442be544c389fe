package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmitrymomot/ideabloom/modules/namer"
	"github.com/dmitrymomot/ideabloom/pkg/namegen"
)

type generateFlags struct {
	industry   string
	theme      string
	attributes string
	style      string
	seed       uint64
	wordbank   string
	json       bool
}

func newGenerateCmd() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of project names",
		Example: `  ideabloom generate --industry tech --theme app --style quirky
  ideabloom generate --attributes "innovative, green" --seed 42 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			style, err := namegen.ParseStyle(f.style)
			if err != nil {
				return err
			}
			bank, err := loadBank(f.wordbank)
			if err != nil {
				return err
			}

			var picker namegen.Picker
			if cmd.Flags().Changed("seed") {
				picker = namegen.NewSeededPicker(f.seed)
			}

			names := namegen.New(bank, picker).Generate(namegen.Request{
				Industry:   f.industry,
				Theme:      f.theme,
				Attributes: f.attributes,
				Style:      style,
			})

			out := cmd.OutOrStdout()
			if f.json {
				return writeNamesJSON(out, names, style)
			}
			return writeNames(out, names, style)
		},
	}

	cmd.Flags().StringVarP(&f.industry, "industry", "i", "", "industry, e.g. Technology, Food, Health")
	cmd.Flags().StringVarP(&f.theme, "theme", "t", "", "project theme, e.g. Blog, App, E-commerce")
	cmd.Flags().StringVarP(&f.attributes, "attributes", "a", "", "comma-separated attributes, e.g. innovative, sustainable")
	cmd.Flags().StringVarP(&f.style, "style", "s", namegen.DefaultStyle.String(), "modern, quirky, professional or creative")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for a reproducible batch")
	cmd.Flags().StringVar(&f.wordbank, "wordbank", "", "YAML word bank to use instead of the built-in one")
	cmd.Flags().BoolVar(&f.json, "json", false, "print JSON")

	return cmd
}

func writeNamesJSON(w io.Writer, names []string, style namegen.Style) error {
	resp := namer.NamesResponse{
		Names:   names,
		Handles: make([]string, len(names)),
		Style:   style.String(),
	}
	for i, n := range names {
		resp.Handles[i] = namer.NameHandle(n)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func writeNames(w io.Writer, names []string, style namegen.Style) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	index := r.NewStyle().Faint(true)
	name := r.NewStyle().Bold(true)
	handle := r.NewStyle().Foreground(lipgloss.Color("37"))

	width := 0
	for _, n := range names {
		width = max(width, lipgloss.Width(n))
	}

	var b strings.Builder
	b.WriteString(title.Render(style.Label()+" names") + "\n")
	for i, n := range names {
		fmt.Fprintf(&b, "%s %s  %s\n",
			index.Render(fmt.Sprintf("%d.", i+1)),
			name.Width(width).Render(n),
			handle.Render("@"+namer.NameHandle(n)),
		)
	}

	body := b.String()
	if cols, ok := terminalWidth(w); ok && cols > width+20 {
		body = r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1).
			Render(strings.TrimRight(body, "\n")) + "\n"
	}

	_, err := io.WriteString(w, body)
	return err
}

func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, false
	}
	return cols, true
}
