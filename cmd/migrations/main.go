package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/vncsmyrnk/careerguide/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/careerguide/internal/config"
)

const usage = "usage: migrations up|down|version"

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	cfg, err := config.LoadPostgres()
	if err != nil {
		log.Fatal(err)
	}

	switch cmd := os.Args[1]; cmd {
	case "up", "down":
		if err := postgres.Migrate(cfg.DSN(), postgres.Direction(cmd)); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Migrations applied (%s).\n", cmd)
	case "version":
		if err := printVersion(cfg.DSN()); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal(usage)
	}
}

func printVersion(dsn string) error {
	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Println("No migration applied.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	fmt.Printf("Version %d (dirty: %t)\n", version, dirty)
	return nil
}
