package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pgoodman/uwo-santa-clause/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "santa",
	Short: "Santa Claus problem simulator",
	Long: `Simulates the Santa Claus problem: one Santa, a pool of elves helped
in groups of three, and a herd of reindeer released as one batch, all
coordinated through blocking primitives with no central scheduler.

The run ends when the last reindeer hitches and the sleigh departs.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/santa/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/santa")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SANTA")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SANTA_WORKSHOP_GROUP_SIZE for workshop.group_size
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
