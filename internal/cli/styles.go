package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stylewheel/pkg/blend"
)

func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the styles of the loaded catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			loaded, err := c.loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(loaded.Styles) == 0 {
				printWarning(out, "No styles available, only %s", blend.DefaultStyle)
				return nil
			}

			rows := make([][]string, 0, len(loaded.Styles))
			for _, s := range loaded.Styles {
				rows = append(rows, []string{
					s.Name,
					fmt.Sprintf("%5.1f°", s.Angle),
					swatch(s.Color) + " " + s.Color,
					loaded.Catalog[s.Name].Description,
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
				Headers("Style", "Angle", "Color", "Description").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == -1:
						return headerStyle
					case col == 0:
						return lipgloss.NewStyle().Foreground(colorBright).Padding(0, 1)
					default:
						return lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
					}
				})

			fmt.Fprintln(out, t.Render())

			names := make([]string, 0, len(loaded.Catalog))
			for name, e := range loaded.Catalog {
				if e.IsDefault {
					names = append(names, name)
				}
			}
			slices.Sort(names)
			if len(names) > 0 {
				printDetail(out, "Center style: %s (%s)", strings.Join(names, ", "), loaded.Catalog.DefaultColor())
			}
			return nil
		},
	}
}
