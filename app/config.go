package app

import (
	"github.com/spf13/cobra"

	"github.com/campusclubs/clubhub/internal/config"
)

func init() { //nolint: gochecknoinits
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "Dump as JSON instead of TOML")

	configCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(configCmd)
}

var (
	dumpJSON bool //nolint:gochecknoglobals

	configCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	dumpCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "dump",
		Short: "Print the effective configuration after env overrides and defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			dump := config.DumpConfig
			if dumpJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(cfg)
			if err != nil {
				return err
			}

			cmd.Println(out)

			return nil
		},
	}
)
