package cmd

import (
	"fmt"
	"strings"

	mdwlog "github.com/msto63/unitx/foundation/core/log"
	"github.com/msto63/unitx/foundation/units/si"
	"github.com/msto63/unitx/internal/tui"
	"github.com/spf13/cobra"
)

var unitsDimension string

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the SI unit catalog",
	Long: `Lists every unit bundled in the si package with its quantity kind,
symbol, dimension and ratio to the coherent SI unit.

Examples:
  unitx units                        # all units
  unitx units --dimension velocity   # one quantity kind`,
	Args: cobra.NoArgs,
	RunE: runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)

	unitsCmd.Flags().StringVarP(&unitsDimension, "dimension", "d", "", "only list units of this quantity kind")
}

func runUnits(cmd *cobra.Command, args []string) error {
	entries := si.Catalog()
	title := "SI units"
	if unitsDimension != "" {
		entries = si.ByKind(unitsDimension)
		if len(entries) == 0 {
			return fmt.Errorf("unknown quantity kind %q, known kinds: %s", unitsDimension, strings.Join(si.Kinds(), ", "))
		}
		title = fmt.Sprintf("SI units of %s", strings.ToLower(unitsDimension))
	}

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			logger.LogError(err)
			return err
		}
	}

	out := cmd.OutOrStdout()
	theme := tui.NewTheme(out, cfg.Output.NoColor)
	fmt.Fprintln(out, theme.RenderTitle(title))
	fmt.Fprintln(out, theme.RenderUnits(entries))
	fmt.Fprintln(out, theme.RenderHelp(fmt.Sprintf("%d units", len(entries))))

	logger.Debug("units listed", mdwlog.Fields{"count": len(entries), "dimension": unitsDimension})
	return nil
}
