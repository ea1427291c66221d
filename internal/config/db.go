package config

import (
	"context"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the Postgres connection used by every repository.
// TranslateError is required: the check-in uniqueness rule depends on
// unique violations surfacing as gorm.ErrDuplicatedKey.
func Connect(ctx context.Context, dsn string) error {
	if dsn == "" {
		return errors.New("DATABASE_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	DB = db
	return nil
}
