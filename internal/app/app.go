// Package app wires the engine together: database, cache, curated
// content, generation backend, and the services built on top of them.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dsangels/aiengine/internal/adapt"
	"github.com/dsangels/aiengine/internal/cache"
	"github.com/dsangels/aiengine/internal/chat"
	"github.com/dsangels/aiengine/internal/curated"
	"github.com/dsangels/aiengine/internal/difficulty"
	"github.com/dsangels/aiengine/internal/generate"
	"github.com/dsangels/aiengine/internal/llm"
	"github.com/dsangels/aiengine/internal/recommend"
	"github.com/dsangels/aiengine/internal/store"
)

// Options configures the engine. Zero values pull from the environment.
type Options struct {
	// DBPath is the database DSN or SQLite path. Empty resolves via
	// DSANGELS_DB and the XDG data directory.
	DBPath string

	// RedisAddr enables the shared Redis cache. Empty (and no
	// DSANGELS_REDIS_ADDR) selects the in-process cache.
	RedisAddr string

	// CuratedDir is the curated-content directory. Empty resolves via
	// DSANGELS_CURATED_DIR, defaulting next to the database.
	CuratedDir string

	// LLM overrides the backend configuration. Nil reads the
	// DSANGELS_AI_* environment variables.
	LLM *llm.Config
}

// App is the composition root. All services share one backend client,
// one cache, and one store; construct it once per process.
type App struct {
	Store       *store.Store
	Cache       cache.Cache
	Curated     *curated.Store
	Client      *llm.Client
	Generator   *generate.Generator
	Adapter     *adapt.Engine
	Recommender *recommend.Recommender
	Estimator   *difficulty.Estimator
	Chat        *chat.Service

	LLMConfig llm.Config

	provider   llm.Provider
	log        *zap.Logger
	redisCache *cache.Redis
}

// New builds a fully wired App. Construction fails on database errors
// and on backend misconfiguration (missing credential, unknown tag);
// everything downstream degrades at call time instead.
func New(ctx context.Context, opts Options, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	a := &App{Store: st, log: log}

	redisAddr := opts.RedisAddr
	if redisAddr == "" {
		redisAddr = os.Getenv("DSANGELS_REDIS_ADDR")
	}
	if redisAddr != "" {
		a.redisCache = cache.NewRedis(redisAddr, log.Named("cache"))
		a.Cache = a.redisCache
	} else {
		a.Cache = cache.NewMemory()
	}

	curatedDir := opts.CuratedDir
	if curatedDir == "" {
		curatedDir = os.Getenv("DSANGELS_CURATED_DIR")
	}
	if curatedDir == "" {
		curatedDir = filepath.Join(filepath.Dir(dbPath), "curated_content")
	}
	a.Curated = curated.NewStore(curatedDir, log.Named("curated"))

	cfg := llm.ConfigFromEnv()
	if opts.LLM != nil {
		cfg = *opts.LLM
	}
	if err := cfg.Validate(); err != nil {
		st.Close()
		return nil, err
	}
	provider, err := llm.NewProvider(ctx, cfg, log.Named("llm"))
	if err != nil {
		st.Close()
		return nil, err
	}
	a.LLMConfig = cfg
	a.provider = provider
	a.Client = llm.NewClient(provider, log.Named("llm"), cfg.Timeout)

	a.Generator = generate.NewGenerator(st.Catalog(), a.Cache, a.Curated, a.Client, log.Named("generate"))
	a.Adapter = adapt.NewEngine(st.Catalog(), a.Cache, a.Client, adapt.DefaultConfig(), log.Named("adapt"))
	a.Recommender = recommend.NewRecommender(st.Users(), st.Catalog(), st.Progress(), log.Named("recommend"))
	a.Estimator = difficulty.NewEstimator(st.Progress(), log.Named("difficulty"))
	a.Chat = chat.NewService(a.Client, log.Named("chat"))

	log.Debug("engine wired",
		zap.String("db", dbPath),
		zap.String("provider", cfg.Provider),
		zap.Bool("redis", a.redisCache != nil))

	return a, nil
}

// ModelInfo reports the configured generation backend.
func (a *App) ModelInfo() llm.ModelInfo {
	return llm.Describe(a.LLMConfig, a.provider)
}

// Close releases the database and cache connections.
func (a *App) Close() error {
	if a.redisCache != nil {
		if err := a.redisCache.Close(); err != nil {
			a.log.Warn("close redis", zap.Error(err))
		}
	}
	return a.Store.Close()
}

// NewLogger builds the process logger. DSANGELS_LOG_LEVEL selects the
// level (default info); DSANGELS_LOG_FORMAT=console switches off JSON.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.RFC3339))
	}

	if lvl := os.Getenv("DSANGELS_LOG_LEVEL"); lvl != "" {
		parsed, err := zap.ParseAtomicLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", lvl, err)
		}
		cfg.Level = parsed
	}
	if os.Getenv("DSANGELS_LOG_FORMAT") == "console" {
		cfg.Encoding = "console"
	}

	return cfg.Build()
}
