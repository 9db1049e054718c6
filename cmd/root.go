package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clockout/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clockout",
	Short: "Calculate weekly work hours, the gap to 40, and the Friday clock-out time.",
	Long: `
**********************************************
*                CLOCK OUT                   *
**********************************************

This CLI takes a week of clock-in/clock-out times and lunch breaks,
normalizes the entered times, and reports per-day hours, the weekly
total, the distance to the 40-hour target, and a projected Friday
clock-out time.

Times accept 12-hour and 24-hour input: 8, 8a, 8:30 PM, 16:00.
Without an AM/PM marker, start times default to AM and end times to PM.
`,
	Example: `
  # Create configuration file
  clockout config create

  # Calculate a week entered on the command line
  clockout calc --day "Monday=8:00,5pm,60" --day "Tuesday=8,4:30,30"

  # Calculate a week from a CSV or Excel file
  clockout calc --input ./week.csv
  clockout calc --input ./week.xlsx --output ./summary.csv

  # Start the local web form
  clockout serve
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.clockout.yaml, then ./.clockout.yaml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	switch cmd.Name() {
	case "calc", "serve":
		return true
	default:
		return false
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".clockout" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".clockout")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Built-in defaults cover every key, so a missing file is fine.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: clockout config create")
	}
}
