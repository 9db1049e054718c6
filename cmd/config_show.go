package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clockout/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  clockout config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file loaded, showing built-in defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("%s: %v\n", config.KeyWeekTargetHours, cfg.Week.TargetHours)
		fmt.Printf("%s: %d\n", config.KeyWeekDefaultLunchMinutes, cfg.Week.DefaultLunchMinutes)
		fmt.Printf("%s: %v\n", config.KeyWeekAssumedDayHours, cfg.Week.AssumedDayHours)
		fmt.Printf("%s: %s\n", config.KeyWeekFridayDefaultStart, cfg.Week.FridayDefaultStart)
		fmt.Printf("%s: %d\n", config.KeyServePort, cfg.Serve.Port)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
