package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/campusclubs/clubhub/internal/db"
	"github.com/campusclubs/clubhub/internal/logger"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err = logger.Init(cfg.Log); err != nil {
			return err
		}

		gdb, err := db.Open(cmd.Context(), &cfg.DB)
		if err != nil {
			return err
		}

		defer func() {
			if cerr := db.Close(gdb); cerr != nil {
				log.Error().Err(cerr).Msg("close database")
			}
		}()

		if err = db.Migrate(cmd.Context(), gdb); err != nil {
			return err
		}

		log.Info().Str("engine", cfg.DB.GormEngine).Msg("schema migrated")

		return nil
	},
}
