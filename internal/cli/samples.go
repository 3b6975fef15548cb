package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wgomg/digest/internal/abstractive"
	"github.com/wgomg/digest/internal/extractive"
	"github.com/wgomg/digest/internal/render"
	"github.com/wgomg/digest/internal/utils"
)

func samplesCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "samples [name]",
		Short: "List the sample articles, or print one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples := a.samples()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				sample, err := samples.Find(args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return render.JSON(out, sample)
				}
				_, err = fmt.Fprintln(out, sample.Text)
				return err
			}

			if asJSON {
				return render.JSON(out, samples)
			}

			t := newTable(cmd).Headers("NAME", "SLUG", "WORDS")
			for _, s := range samples {
				t.Row(s.Name, s.Slug(), fmt.Sprint(utils.CountWords(s.Text)))
			}
			_, err := fmt.Fprintln(out, t.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}

func methodsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the summarization methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := newTable(cmd).Headers("KEY", "NAME", "KIND", "AVAILABLE")
			for _, m := range extractive.Methods() {
				t.Row(string(m), m.DisplayName(), "extractive", "yes")
			}

			available := "no"
			if a.cfg.AbstractiveEnabled() {
				available = "yes"
			}
			for _, m := range abstractive.Models() {
				t.Row(string(m), m.DisplayName(), "abstractive", available)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
}

func newTable(cmd *cobra.Command) *table.Table {
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())
	header := renderer.NewStyle().Bold(true).Padding(0, 1)
	cell := renderer.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
