package daemon

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/auth"
	"github.com/campusclubs/clubhub/internal/club"
	"github.com/campusclubs/clubhub/internal/config"
	"github.com/campusclubs/clubhub/internal/db/controller/setting"
	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/membership"
)

// SeedSetting names the setting recording that initial data was written.
const SeedSetting = "seed"

const adminUsername = "admin"

// SeedMarker is stored under SeedSetting once the database was seeded.
type SeedMarker struct {
	SeededAt  time.Time `json:"seededAt"`
	Admin     string    `json:"admin,omitempty"`
	DemoClubs int       `json:"demoClubs"`
}

//nolint:gochecknoglobals
var demoClubs = []club.CreateInput{
	{Name: "Chess", Description: "Weekly blitz and rapid tournaments."},
	{Name: "Drama", Description: "Rehearsals and two plays a semester."},
	{Name: "Robotics", Description: "Build, program and compete."},
}

// Seed writes the initial admin account and demo clubs into a fresh database.
// It runs once; later calls find the seed marker and return.
func Seed(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	var marker SeedMarker

	err := setting.LoadJSON(ctx, db, SeedSetting, &marker)
	if err == nil {
		log.Debug().Time("seeded_at", marker.SeededAt).Msg("database already seeded")

		return nil
	}

	if !errors.Is(err, setting.ErrSettingNotFound) {
		return err
	}

	marker.SeededAt = time.Now().UTC()

	if marker.Admin, err = seedAdmin(ctx, cfg, db); err != nil {
		return err
	}

	if cfg.Seed.DemoClubs {
		if marker.DemoClubs, err = seedClubs(ctx, db); err != nil {
			return err
		}
	}

	log.Info().Str("admin", marker.Admin).Int("demo_clubs", marker.DemoClubs).Msg("database seeded")

	return setting.SaveJSON(ctx, db, SeedSetting, marker)
}

func seedAdmin(ctx context.Context, cfg *config.Config, db *gorm.DB) (string, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return "", errors.Wrap(err, "count users")
	}

	if count > 0 {
		return "", nil
	}

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Warn().Msg("empty user table and no seed admin configured: nobody can log in")

		return "", nil
	}

	u, err := auth.NewLocalProvider(db).CreateUser(ctx, auth.NewUser{
		Username: adminUsername,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		FullName: "Administrator",
		IsAdmin:  true,
	})
	if err != nil {
		return "", err
	}

	return u.Email, nil
}

func seedClubs(ctx context.Context, db *gorm.DB) (int, error) {
	clubs := club.NewService(db, membership.NewService(db))
	created := 0

	for _, in := range demoClubs {
		_, err := clubs.Create(ctx, in)

		switch {
		case err == nil:
			created++
		case errors.Is(err, club.ErrClubExists):
		default:
			return created, err
		}
	}

	return created, nil
}
