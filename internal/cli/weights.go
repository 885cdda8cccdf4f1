package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stylewheel/pkg/blend"
	"github.com/matzehuels/stylewheel/pkg/catalog"
	"github.com/matzehuels/stylewheel/pkg/errors"
)

func (c *CLI) weightsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "weights X Y",
		Short: "Compute the blend at a point on the disk",
		Long: `Compute the style distribution for a point in disk coordinates.

Points outside the disk are clamped to the rim first. Use -- before negative
coordinates.`,
		Example: `  stylewheel weights 450 250
  stylewheel weights --json 340 160
  stylewheel weights -- -10 250`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseCoordinate("X", args[0])
			if err != nil {
				return err
			}
			y, err := parseCoordinate("Y", args[1])
			if err != nil {
				return err
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			loaded, err := c.loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			report := loaded.Evaluate(blend.Point{X: x, Y: y}, cfg.Disk, cfg.Blend)
			if asJSON {
				return writeReportJSON(cmd.OutOrStdout(), report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func parseCoordinate(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", name, raw)
	}
	if err := errors.ValidateFinite(errors.ErrCodeInvalidInput, name, v); err != nil {
		return 0, err
	}
	return v, nil
}

// printReport renders a report: cursor, readout, description and color.
func printReport(w io.Writer, r catalog.Report) {
	printKeyValue(w, "Cursor", fmt.Sprintf("(%.1f, %.1f)", r.X, r.Y))
	for i, line := range r.Readout {
		key := ""
		if i == 0 {
			key = "Blend"
		}
		printKeyValue(w, key, line)
	}
	printKeyValue(w, "Describe", r.Description)
	printKeyValue(w, "Color", swatch(r.Color)+" "+r.Color)
}

func writeReportJSON(w io.Writer, r catalog.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
