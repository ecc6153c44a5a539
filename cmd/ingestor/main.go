package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotelmatch/internal/adapters/embedding"
	"hotelmatch/internal/adapters/observability"
	"hotelmatch/internal/app"
	"hotelmatch/internal/shared"
	mysqlrepo "hotelmatch/internal/storage/mysql"
	"hotelmatch/internal/textnorm"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("embed_base", cfg.EmbedBase).
		Str("model", cfg.EmbedModel).
		Int("workers", cfg.Workers).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	embedder, err := embedding.New(cfg.EmbedBase, cfg.EmbedToken, cfg.EmbedModel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize embedding client")
	}

	// Descriptions skip spell correction, so no catalog lexicon is needed here.
	res, err := textnorm.NewResources(textnorm.BaseLexicon())
	if err != nil {
		log.Fatal().Err(err).Msg("normalizer init failed")
	}

	ing := app.NewEmbeddingIngestService(repo, embedder, textnorm.New(res), log.Logger)

	pending, err := ing.ListPending(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listing pending hotels failed")
	}
	log.Info().Int("pending", len(pending)).Msg("hotels without embeddings")

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, h := range pending {
		h := h

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := ing.EmbedHotel(ctx, h); err != nil {
				log.Warn().Int64("id", h.ID).Err(err).Msg("embed failed")
				return
			}
			log.Info().Int64("id", h.ID).Msg("embed ok")
		}()
	}

	wg.Wait()
	log.Info().Msg("embedding ingestion completed")
}
