// seed carga ingredientes desde un CSV separado por ';' usando el mismo caso de uso que la API
// (misma validación).
//
// Uso: go run ./cmd/seed [-latin1] [-atomic] [ingredientes.csv]
// Columnas: nome;quantidade;unidade;quantidade_minima;validade;fornecedor
// Acepta coma decimal ("1,5") y fechas AAAA-MM-DD o DD/MM/AAAA. La cabecera es opcional.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/stockmanager/internal/application/dto"
	"github.com/jhoicas/stockmanager/internal/application/usecase"
	"github.com/jhoicas/stockmanager/internal/infrastructure/postgres"
	"github.com/jhoicas/stockmanager/pkg/config"
	"github.com/jhoicas/stockmanager/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "el archivo está en ISO-8859-1 (exportaciones de planillas antiguas)")
	atomic := flag.Bool("atomic", false, "todo o nada: una sola transacción para el archivo completo")
	flag.Parse()

	csvPath := "ingredientes.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed")

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", csvPath).Msg("abrir CSV")
	}
	defer f.Close()

	var r io.Reader = f
	if *latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	requests, err := ParseCSV(r)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *atomic {
		reqs := make([]dto.IngredientRequest, 0, len(requests))
		for _, row := range requests {
			reqs = append(reqs, row.Request)
		}
		out, err := usecase.CreateBatch(ctx, postgres.NewTxRunner(pool), reqs)
		if err != nil {
			log.Fatal().Err(err).Msg("seed revertido")
		}
		log.Info().Int("created", len(out)).Str("path", csvPath).Msg("seed terminado")
		return
	}

	uc := usecase.NewIngredientUseCase(postgres.NewIngredientRepository(pool))

	var created, failed int
	for _, row := range requests {
		out, err := uc.Create(ctx, row.Request)
		if err != nil {
			failed++
			log.Warn().Err(err).Int("line", row.Line).Str("nome", row.Request.Nome).Msg("fila rechazada")
			continue
		}
		created++
		log.Debug().Int64("id", out.ID).Str("nome", out.Nome).Msg("ingrediente creado")
	}

	log.Info().Int("created", created).Int("failed", failed).Str("path", csvPath).Msg("seed terminado")
	if failed > 0 {
		os.Exit(2)
	}
}
