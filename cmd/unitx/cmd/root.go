package cmd

import (
	"fmt"
	"os"

	mdwerror "github.com/msto63/unitx/foundation/core/error"
	mdwlog "github.com/msto63/unitx/foundation/core/log"
	"github.com/msto63/unitx/internal/tui"
	"github.com/msto63/unitx/pkg/core/config"
	"github.com/msto63/unitx/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// Loaded by PersistentPreRunE before any subcommand runs
var (
	cfg    *config.Config
	logger *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "unitx",
	Short: "unitx - dimensional analysis for Go",
	Long: `unitx is a units-of-measure library for Go. Quantities carry their
dimension and unit in the type, so adding a length to a time does not
compile and converting kilometres to metres is exact.

This command lists the bundled SI units and runs worked examples.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or YAML (default: $"+config.EnvConfigPath+" or ./unitx.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads the configuration and builds the logger. Without an
// explicit file the defaults apply.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
		if os.Getenv(config.EnvConfigPath) == "" && mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		return err
	}

	logger = logging.FromConfig(cfg, verbose, cmd.ErrOrStderr())
	logger.Debug("configuration loaded", mdwlog.Fields{"command": cmd.Name(), "config": cfgFile})
	return nil
}

func printError(cmd *cobra.Command, err error) {
	noColor := cfg != nil && cfg.Output.NoColor
	theme := tui.NewTheme(cmd.ErrOrStderr(), noColor)
	fmt.Fprintln(cmd.ErrOrStderr(), theme.RenderError(err.Error()))
}
