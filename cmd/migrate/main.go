// migrate aplica o revierte las migraciones del esquema con goose.
//
// Uso: go run ./cmd/migrate [-dir ruta] up|down|status|version|reset
// Sin -dir usa las migraciones embebidas en el binario.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/stockmanager/internal/infrastructure/postgres"
	"github.com/jhoicas/stockmanager/pkg/config"
	"github.com/jhoicas/stockmanager/pkg/logger"
)

func main() {
	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "", "directorio con migraciones .sql (por defecto, las embebidas)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("migrate")

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	var migrator *postgres.Migrator
	if migrationsDir != "" {
		migrator, err = postgres.NewMigratorFS(pool, os.DirFS(migrationsDir))
	} else {
		migrator, err = postgres.NewMigrator(pool)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("preparar migraciones")
	}
	defer migrator.Close()

	if err := run(ctx, migrator, command); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("goose")
	}
	log.Info().Str("command", command).Msg("goose ok")
}

func run(ctx context.Context, m *postgres.Migrator, command string) error {
	switch command {
	case "up":
		n, err := m.Up(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d migración(es) aplicada(s)\n", n)
	case "down":
		return m.Down(ctx)
	case "reset":
		return m.Reset(ctx)
	case "version":
		v, err := m.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("versión: %d\n", v)
	case "status":
		list, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range list {
			applied := "pendiente"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-40s %s\n", s.Source.Path, applied)
		}
	default:
		return fmt.Errorf("comando desconocido %q (up, down, status, version, reset)", command)
	}
	return nil
}
