package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage clockout configuration file values.",
	Long: `Create and display the clockout configuration file.

The configuration stores the calculation defaults:
- week.target_hours
- week.default_lunch_minutes
- week.assumed_day_hours
- week.friday_default_start
- serve.port`,
	Example: `
  # Create default config in $HOME/.clockout.yaml
  clockout config create

  # Show active config and source file
  clockout config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
