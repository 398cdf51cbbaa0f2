// Package migrations runs the embedded goose schema migrations. The SQL
// scripts are compiled into the binary so deployments never depend on a
// scripts directory being present on disk.
package migrations

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"rentora/internal/shared/logger"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

const scriptsDir = "scripts"

// Up applies all pending migrations.
func Up(db *gorm.DB, log logger.Interface) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, scriptsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	log.Infow("migrations applied",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

// Down rolls back the given number of migrations.
func Down(db *gorm.DB, steps int, log logger.Interface) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, scriptsDir); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
	}

	log.Infow("migrations rolled back", "steps", steps)
	return nil
}

// Version returns the current schema version.
func Version(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.GetDBVersion(sqlDB)
}
