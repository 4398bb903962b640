package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kolamstudio/kolam/pkg/guidance"
	"github.com/kolamstudio/kolam/pkg/kolam"
	"github.com/kolamstudio/kolam/pkg/pipeline"
)

// archetypesCommand lists the archetypes with a sample at default settings.
func (c *CLI) archetypesCommand() *cobra.Command {
	var notes bool

	cmd := &cobra.Command{
		Use:   "archetypes",
		Short: "List supported archetypes",
		Long: `List the supported archetypes with the dot and stroke counts of a sample
synthesized at the default settings (complexity 5, 8 elements, 9x9 grid).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.out, archetypeTable(notes))
			return nil
		},
	}
	cmd.Flags().BoolVar(&notes, "notes", false, "include the cultural note for each archetype")
	return cmd
}

// archetypeTable renders the archetype listing.
func archetypeTable(notes bool) string {
	headers := []string{"Archetype", "Elements", "Dots", "Strokes"}
	if notes {
		headers = append(headers, "Note")
	}

	var rows [][]string
	for _, a := range kolam.Archetypes() {
		p := kolam.Synthesize(kolam.Request{
			Archetype:    a,
			Symmetry:     kolam.Rotational,
			Complexity:   guidance.DefaultComplexity,
			ElementCount: guidance.DefaultCount,
			GridSize:     pipeline.DefaultGridSize,
		})
		row := []string{string(a), a.Element(), strconv.Itoa(len(p.Dots)), strconv.Itoa(len(p.Connections))}
		if notes {
			row = append(row, wrap(a.Note(), 48))
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 2 || col == 3:
				return StyleNumber
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		}).
		Render()
}
