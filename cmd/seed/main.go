// Command seed creates or updates a user account. The API surface has no
// registration endpoint, so accounts are provisioned with this tool.
//
// Usage:
//
//	seed -u alice [-d postgres://...]
//
// The password is read from the terminal without echo.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"babytracker/internal/server/config"
	"babytracker/internal/server/repositories/repomanager"
	"babytracker/internal/server/services"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	defaults := &config.Config{}
	defaults.LoadDefaults()
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		defaults.DatabaseDSN = dsn
	}

	dsn := flag.String("d", defaults.DatabaseDSN, "database DSN")
	username := flag.String("u", "", "username to create or update")
	flag.Parse()

	if *username == "" {
		return fmt.Errorf("username is required (-u)")
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return fmt.Errorf("error reading password: %w", err)
	}
	if len(password) == 0 {
		return fmt.Errorf("password must not be empty")
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	user, err := services.NewUserService(db, rm).Upsert(ctx, *username, string(password))
	if err != nil {
		return err
	}

	fmt.Printf("user %s ready (id %s)\n", user.Username, user.ID)
	return nil
}
