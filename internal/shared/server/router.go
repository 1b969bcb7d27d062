package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"prep-backend/internal/history"
	"prep-backend/internal/prep"
	"prep-backend/internal/progress"
	"prep-backend/internal/shared/config"
	"prep-backend/internal/shared/metrics"
	"prep-backend/internal/shared/server/middleware"
	"prep-backend/internal/shared/server/respond"
	"prep-backend/internal/shared/storage/db"
	"prep-backend/internal/shared/storage/kv"
	"prep-backend/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/analyses" {
					return "ANALYZE"
				}
				return "DEFAULT"
			},
			Rules: map[string]middleware.RateLimitRule{
				"ANALYZE": {Rate: 2, Burst: 10},
			},
		}),
	)

	store := OpenStore(cfg)

	historySvc := history.New(store)
	prepSvc := prep.NewService(historySvc)
	progressSvc := progress.New(store)

	historyHandler := history.NewHandler(prepSvc, historySvc)
	progressHandler := progress.NewHandler(progressSvc, historySvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	historyHandler.RegisterRoutes(api)
	progressHandler.RegisterRoutes(api)

	return r
}

// OpenStore builds the configured KV backend, falling back to memory when
// a remote backend is unreachable.
func OpenStore(cfg config.Config) kv.Store {
	ctx := context.Background()
	switch cfg.KVStoreType {
	case "file":
		return kv.NewFile(cfg.DataDir)
	case "redis":
		store, err := kv.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.KVNamespace)
		if err != nil {
			telemetry.Error("redis unavailable, falling back to memory", map[string]any{"addr": cfg.RedisAddr, "error": err.Error()})
			return kv.NewMemory()
		}
		return store
	case "postgres":
		database, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			telemetry.Error("database unavailable, falling back to memory", map[string]any{"error": err.Error()})
			return kv.NewMemory()
		}
		if err := db.RunMigrations(ctx, database); err != nil {
			telemetry.Error("migrations failed, falling back to memory", map[string]any{"error": err.Error()})
			return kv.NewMemory()
		}
		return &kv.Postgres{DB: database}
	default:
		return kv.NewMemory()
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
