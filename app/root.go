// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/campusclubs/clubhub/internal/config"
)

// EnvConfigPath overrides the --config flag default.
const EnvConfigPath = "CLUBHUB_CONFIG"

const configKey = "config"

var rootCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "clubhub",
	Short: "clubhub is the backend of the campus club portal",
	Long: `clubhub serves the JSON API of the campus club portal:
clubs, memberships, events with attendance and announcements.`,
	Args:         cobra.OnlyValidArgs,
	SilenceUsage: true,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().String(configKey, "./etc/", "directory holding main.toml (env "+EnvConfigPath+")")

	if err := viper.BindPFlag(configKey, rootCmd.PersistentFlags().Lookup(configKey)); err != nil {
		panic(err)
	}

	if err := viper.BindEnv(configKey, EnvConfigPath); err != nil {
		panic(err)
	}
}

// loadConfig reads the configuration from the --config directory.
func loadConfig() (*config.Config, error) {
	cfg, err := config.ReadConfig(viper.GetString(configKey))
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
