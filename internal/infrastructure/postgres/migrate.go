package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/stockmanager/internal/infrastructure/postgres/migrations"
)

// Migrator aplica las migraciones embebidas con goose sobre el pool de pgx.
type Migrator struct {
	db       *sql.DB
	provider *goose.Provider
}

// NewMigrator usa las migraciones embebidas en el binario.
func NewMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	return NewMigratorFS(pool, migrations.FS)
}

// NewMigratorFS abre un *sql.DB respaldado por el pool (goose necesita database/sql)
// y lee los .sql de fsys.
func NewMigratorFS(pool *pgxpool.Pool, fsys fs.FS) (*Migrator, error) {
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return &Migrator{db: db, provider: provider}, nil
}

// Up aplica todas las migraciones pendientes y devuelve cuántas se aplicaron.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("migrar: %w", err)
	}
	return len(results), nil
}

// Down revierte la última migración.
func (m *Migrator) Down(ctx context.Context) error {
	if _, err := m.provider.Down(ctx); err != nil {
		return fmt.Errorf("revertir: %w", err)
	}
	return nil
}

// Reset revierte todas las migraciones.
func (m *Migrator) Reset(ctx context.Context) error {
	if _, err := m.provider.DownTo(ctx, 0); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

// Version devuelve la versión actual del esquema.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	return m.provider.GetDBVersion(ctx)
}

// Status devuelve el estado de cada migración.
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	return m.provider.Status(ctx)
}

// Close libera el *sql.DB (no cierra el pool subyacente).
func (m *Migrator) Close() error {
	return m.db.Close()
}
