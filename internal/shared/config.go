package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	TranslateBase string
	TranslateKey  string
	TranslateRPS  int

	EmbedBase  string
	EmbedToken string
	EmbedModel string

	WeightSemantic float64
	WeightLocation float64
	WeightSubScore float64

	Workers  int
	CacheTTL time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotelmatch?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", ""),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),

		TranslateBase: env("TRANSLATE_BASE_URL", "http://localhost:5000"),
		TranslateKey:  env("TRANSLATE_API_KEY", ""),
		TranslateRPS:  atoi("TRANSLATE_RPS", 5),

		EmbedBase:  env("EMBED_BASE_URL", "http://localhost:11434/v1"),
		EmbedToken: env("EMBED_API_KEY", ""),
		EmbedModel: env("EMBED_MODEL", "nomic-embed-text"),

		WeightSemantic: atof("WEIGHT_SEMANTIC", 0.5),
		WeightLocation: atof("WEIGHT_LOCATION", 0.3),
		WeightSubScore: atof("WEIGHT_SUBSCORE", 0.2),

		Workers:  atoi("INGEST_WORKERS", 8),
		CacheTTL: time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
	}
	if sum := c.WeightSemantic + c.WeightLocation + c.WeightSubScore; sum < 0.999 || sum > 1.001 {
		// not enforced, the formula stays linear either way
		log.Warn().Float64("sum", sum).Msg("score weights do not sum to 1.0")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
