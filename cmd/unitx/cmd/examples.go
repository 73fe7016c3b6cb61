package cmd

import (
	"fmt"
	"strings"

	"github.com/msto63/unitx/internal/examples"
	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples <name>...",
	Short: "Run worked examples",
	Long: `Runs worked unit computations. Inputs come from the [examples]
section of the config file.

Examples:
  unitx examples hello       # average speed of two trips
  unitx examples box         # fill level of a box
  unitx examples capacitor   # RC discharge curve
  unitx examples response    # unit display walk-through
  unitx examples all         # all of the above`,
	ValidArgs: append(examples.Names(), "all"),
	Args:      cobra.MatchAll(cobra.MinimumNArgs(1), cobra.OnlyValidArgs),
	RunE:      runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, args []string) error {
	names := args
	if len(args) == 1 && args[0] == "all" {
		names = examples.Names()
	}

	out := cmd.OutOrStdout()
	runner := examples.NewRunner(out, cfg, logger)
	for i, name := range names {
		if len(names) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s ==\n", strings.ToUpper(name))
		}
		if err := runner.Run(name); err != nil {
			return err
		}
	}
	return nil
}
