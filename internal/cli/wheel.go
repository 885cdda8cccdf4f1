package cli

import (
	"bytes"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stylewheel/pkg/blend"
)

func (c *CLI) wheelCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Blend styles interactively with the mouse",
		Long: `Open the blend wheel. Drag the cursor with the left mouse button; the
readout on the right follows the cursor. The final blend is printed on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			loaded, err := c.loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			ctrl, err := blend.New(cfg.Disk, loaded.Styles, blend.WithParams(cfg.Blend))
			if err != nil {
				return err
			}

			// Log lines would tear the alternate screen; hold them until exit.
			var held bytes.Buffer
			c.Logger.SetOutput(&held)
			final, err := tea.NewProgram(
				newWheelModel(ctrl, loaded),
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithReportFocus(),
			).Run()
			c.Logger.SetOutput(c.logOut)
			fmt.Fprint(c.logOut, held.String())
			if err != nil {
				return fmt.Errorf("wheel: %w", err)
			}

			report := final.(wheelModel).report()
			if asJSON {
				return writeReportJSON(cmd.OutOrStdout(), report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the final report as JSON")
	return cmd
}
