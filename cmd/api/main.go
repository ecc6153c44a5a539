package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"hotelmatch/internal/adapters/embedding"
	server "hotelmatch/internal/adapters/http_server"
	"hotelmatch/internal/adapters/observability"
	redisad "hotelmatch/internal/adapters/redis"
	"hotelmatch/internal/adapters/translate"
	"hotelmatch/internal/app"
	"hotelmatch/internal/catalog"
	"hotelmatch/internal/domain"
	"hotelmatch/internal/shared"
	mysqlrepo "hotelmatch/internal/storage/mysql"
	"hotelmatch/internal/textnorm"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(reg)

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// catalog: loaded once, read-only for the process lifetime
	repo := mysqlrepo.New(db)
	records, err := repo.ListHotels(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}
	store, err := catalog.New(records, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog validation failed")
	}
	log.Info().Int("hotels", store.Len()).Int("dim", store.Dim()).Msg("catalog loaded")

	// normalizer resources: built once from the catalog vocabulary
	lexicon := textnorm.BaseLexicon()
	for _, h := range store.Hotels() {
		lexicon = append(lexicon, textnorm.LexiconFromTexts([]string{h.Description})...)
	}
	res, err := textnorm.NewResources(lexicon)
	if err != nil {
		log.Fatal().Err(err).Msg("normalizer init failed")
	}

	// collaborators
	translator, err := translate.New(cfg.TranslateBase, cfg.TranslateKey, cfg.TranslateRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize translate client")
	}
	embedder, err := embedding.New(cfg.EmbedBase, cfg.EmbedToken, cfg.EmbedModel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize embedding client")
	}

	weights := app.Weights{
		Semantic: cfg.WeightSemantic,
		Location: cfg.WeightLocation,
		SubScore: cfg.WeightSubScore,
	}
	rec := app.NewRecommender(store, translator, embedder, textnorm.New(res), weights, log.Logger)

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	svc := app.NewRecommendationService(rec, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{S: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
