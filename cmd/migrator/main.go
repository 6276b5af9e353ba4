package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/xw1nchester/brand-management-backend/internal/config"
	pgclient "github.com/xw1nchester/brand-management-backend/pkg/client/postgresql"
)

func main() {
	var configPath, migrationsPath, dsn string
	var down bool

	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to config file, used when -dsn is empty")
	flag.StringVar(&migrationsPath, "migrations-path", "migrations", "path to migrations")
	flag.StringVar(&dsn, "dsn", "", "database dsn")
	flag.BoolVar(&down, "down", false, "roll back all migrations")
	flag.Parse()

	if dsn == "" {
		if configPath == "" {
			panic("either -dsn or -config is required")
		}

		dsn = pgclient.DSN(config.MustLoadByPath(configPath).PostgreSQL) + "?sslmode=disable"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		panic(err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"postgres", driver)
	if err != nil {
		panic(err)
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}

		panic(err)
	}

	if down {
		fmt.Println("all migrations have been rolled back")
		return
	}

	fmt.Println("all migrations have been successfully applied")
}
