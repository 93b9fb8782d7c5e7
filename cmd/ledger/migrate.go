package main

import (
	"context"
	"fmt"
	"log/slog"

	"household-ledger/internal/config"
	"household-ledger/internal/database"
)

type migrateCmd struct {
	Up     migrateUpCmd     `cmd help:"Apply all pending migrations."`
	Down   migrateDownCmd   `cmd help:"Roll back migrations."`
	Status migrateStatusCmd `cmd help:"Print the current schema version."`
}

type migrateUpCmd struct {
	Seeds bool `help:"Execute the SQL seed files after migrating."`
}

type migrateDownCmd struct {
	Steps int `default:"1" help:"Number of migrations to roll back."`
}

type migrateStatusCmd struct{}

// openRunner connects and waits for the database. SQL migrations target
// postgres only.
func openRunner(cfg *config.Config) (*database.DB, *database.MigrationRunner, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runner := database.NewMigrationRunner(sqlDB)
	if db.Driver() != config.DriverPostgres {
		return db, runner, nil
	}
	if err := runner.WaitForDatabase(context.Background()); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, runner, nil
}

func (m *migrateUpCmd) Run(c *cliContext) error {
	cfg := c.setup()
	db, runner, err := openRunner(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if db.Driver() != config.DriverPostgres {
		slog.Info("SQL migrations are postgres only, running AutoMigrate", "driver", db.Driver())
		if err := db.AutoMigrate(); err != nil {
			return err
		}
		return db.CreateIndexes()
	}

	if err := runner.RunMigrations(); err != nil {
		return err
	}
	if m.Seeds {
		return runner.LoadSeedFiles()
	}
	return nil
}

func (m *migrateDownCmd) Run(c *cliContext) error {
	cfg := c.setup()
	db, runner, err := openRunner(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if db.Driver() != config.DriverPostgres {
		return fmt.Errorf("rollback is not supported for driver %s", db.Driver())
	}
	return runner.RollbackMigrations(m.Steps)
}

func (m *migrateStatusCmd) Run(c *cliContext) error {
	cfg := c.setup()
	db, runner, err := openRunner(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if db.Driver() != config.DriverPostgres {
		return fmt.Errorf("migration status is not tracked for driver %s", db.Driver())
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		return err
	}
	fmt.Printf("version=%d dirty=%t\n", version, dirty)
	return nil
}
