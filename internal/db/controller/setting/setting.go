// Package setting persists named application values in the settings table.
package setting

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusclubs/clubhub/internal/db/models"
)

const nameQueryPattern = "name = ?"

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when a setting name is empty.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its name.
func Get(ctx context.Context, db *gorm.DB, name string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var s models.Setting

	err := db.WithContext(ctx).Where(nameQueryPattern, name).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSettingNotFound
	}

	if err != nil {
		return nil, errors.Wrapf(err, "get setting %s", name)
	}

	return &s, nil
}

// Set creates or replaces the value of a setting in a single upsert.
func Set(ctx context.Context, db *gorm.DB, name string, value []byte) error {
	if db == nil {
		return ErrDBNil
	}

	if name == "" {
		return ErrSettingNameEmpty
	}

	s := models.Setting{Name: name, Value: value}

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&s).Error

	return errors.Wrapf(err, "set setting %s", name)
}

// Delete removes a setting. Deleting a missing setting is not an error.
func Delete(ctx context.Context, db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}

	err := db.WithContext(ctx).Where(nameQueryPattern, name).Delete(&models.Setting{}).Error

	return errors.Wrapf(err, "delete setting %s", name)
}

// LoadJSON decodes the JSON value of setting name into v.
func LoadJSON(ctx context.Context, db *gorm.DB, name string, v any) error {
	s, err := Get(ctx, db, name)
	if err != nil {
		return err
	}

	return errors.Wrapf(json.Unmarshal(s.Value, v), "decode setting %s", name)
}

// SaveJSON stores v JSON encoded under name.
func SaveJSON(ctx context.Context, db *gorm.DB, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode setting %s", name)
	}

	return Set(ctx, db, name, data)
}
