// seed_units importa el listado de establecimientos del CNES (CSV de DATASUS)
// a la tabla units. Las unidades existentes se actualizan por nombre.
//
// Uso: go run ./cmd/seed_units [ruta/tbEstabelecimento.csv]
// Por defecto busca tbEstabelecimento.csv en el directorio actual.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/patrimonio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/patrimonio-api/pkg/config"
	"github.com/jhoicas/patrimonio-api/pkg/logger"
)

func main() {
	csvPath := "tbEstabelecimento.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "seed_units",
	})

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", csvPath).Msg("abrir CSV")
	}
	defer f.Close()

	rows, skipped, err := parseUnits(f)
	if err != nil {
		log.Fatal().Err(err).Msg("procesar CSV")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	imported, err := importUnits(ctx, pool, rows)
	if err != nil {
		log.Fatal().Err(err).Int("imported", imported).Msg("importar unidades")
	}
	log.Info().
		Int("imported", imported).
		Int("skipped", skipped).
		Str("file", csvPath).
		Msg("unidades CNES importadas")
}

// importUnits hace upsert de todas las filas en una sola transacción.
func importUnits(ctx context.Context, db postgres.TxBeginner, rows []unitRow) (int, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	repo := postgres.NewUnitRepository(tx)
	now := time.Now().UTC()
	for i, row := range rows {
		u := &entity.Unit{
			ID:        uuid.New().String(),
			Name:      row.Name,
			CNESCode:  row.CNES,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if row.Address != "" {
			addr := row.Address
			u.Address = &addr
		}
		if err := repo.Upsert(ctx, u); err != nil {
			return i, fmt.Errorf("unidad %q: %w", row.Name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	committed = true
	return len(rows), nil
}
