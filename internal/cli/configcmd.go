package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tshape/pkg/config"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Long: `Print the effective configuration as TOML.

The output merges the built-in defaults, the config file and the
environment, and can be saved as a starting point for ` + config.DefaultPath + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cfg.Encode(cmd.OutOrStdout())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and report problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Loading already validated; reaching here means the config is valid.
			printSuccess("Configuration is valid")
			if c.cfg.UsesSample() {
				printDetail("No data files configured; the sample catalog is used")
			}
			return nil
		},
	})

	return cmd
}
