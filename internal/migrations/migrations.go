// File: internal/migrations/migrations.go
package migrations

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/config"
)

// Manager applies schema migrations from the configured directory.
type Manager struct {
	cfg    *config.DatabaseConfig
	logger *zap.Logger
}

func NewManager(cfg *config.DatabaseConfig, logger *zap.Logger) *Manager {
	return &Manager{
		cfg:    cfg,
		logger: logger.Named("migrations"),
	}
}

func (m *Manager) databaseURL() string {
	return fmt.Sprintf("pgx5://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(m.cfg.User),
		url.QueryEscape(m.cfg.Password),
		m.cfg.Host, m.cfg.Port, m.cfg.DBName, m.cfg.SSLMode,
	)
}

func (m *Manager) newMigrator() (*migrate.Migrate, error) {
	migrator, err := migrate.New(
		fmt.Sprintf("file://%s", m.cfg.MigrationsPath),
		m.databaseURL(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return migrator, nil
}

// MigrateUp applies all pending migrations.
func (m *Manager) MigrateUp() error {
	migrator, err := m.newMigrator()
	if err != nil {
		return err
	}
	defer migrator.Close()

	err = migrator.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")
	} else {
		m.logger.Info("Migrations applied successfully")
	}
	return nil
}

// MigrateDown rolls back one migration.
func (m *Manager) MigrateDown() error {
	migrator, err := m.newMigrator()
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	m.logger.Info("Migration rolled back")
	return nil
}
