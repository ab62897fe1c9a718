package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wolf-ai/internal/ai"
	"wolf-ai/internal/config"
	"wolf-ai/internal/handler"
	"wolf-ai/internal/metrics"
	"wolf-ai/internal/middleware"
	"wolf-ai/internal/service"
	"wolf-ai/internal/store"
	"wolf-ai/internal/trainer"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	cfg    *config.Config
	log    *zap.Logger
}

// Deps collects the components the HTTP layer exposes.
type Deps struct {
	Store     *store.Store
	AI        *ai.Client
	Simulator *trainer.Simulator
	Auth      service.AuthService
	Redis     *redis.Client
	BaseCtx   context.Context
}

func NewServer(cfg *config.Config, deps Deps, log *zap.Logger) *Server {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(requestMetrics())

	s := &Server{
		router: router,
		cfg:    cfg,
		log:    log,
	}

	s.setupRoutes(deps)

	return s
}

func (s *Server) setupRoutes(deps Deps) {
	modelHandler := handler.NewModelHandler(deps.Store, s.log)
	trainingHandler := handler.NewTrainingHandler(deps.Store, deps.Simulator, deps.BaseCtx, s.log)
	apiKeyHandler := handler.NewApiKeyHandler(deps.Store, s.log)
	chatHandler := handler.NewChatHandler(deps.Store, deps.AI, s.log)
	statsHandler := handler.NewStatsHandler(deps.Store, s.log)
	authHandler := handler.NewAuthHandler(deps.Auth, s.log)

	api := s.router.Group("/api")

	api.GET("/models", modelHandler.ListModels)
	api.POST("/models", modelHandler.CreateModel)
	api.PUT("/models/:id", modelHandler.UpdateModel)
	api.DELETE("/models/:id", modelHandler.DeleteModel)

	api.GET("/training-jobs", trainingHandler.ListTrainingJobs)
	api.POST("/training-jobs", trainingHandler.CreateTrainingJob)
	api.PUT("/training-jobs/:id", trainingHandler.UpdateTrainingJob)

	api.GET("/api-keys", apiKeyHandler.ListApiKeys)
	api.POST("/api-keys", apiKeyHandler.CreateApiKey)
	api.PUT("/api-keys/:id", apiKeyHandler.UpdateApiKey)
	api.DELETE("/api-keys/:id", apiKeyHandler.DeleteApiKey)

	api.GET("/chat/:modelId", chatHandler.GetChatMessages)
	chatRoute := api.Group("")
	if s.cfg.RateLimit.Enabled && deps.Redis != nil {
		chatRoute.Use(middleware.RateLimitMiddleware(deps.Redis, s.cfg.RateLimit.RequestsPerMinute))
	}
	chatRoute.POST("/chat", chatHandler.SendMessage)

	api.GET("/stats", statsHandler.GetStats)
	api.GET("/health", statsHandler.HealthCheck)

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.serveStatic()
}

// serveStatic serves the built dashboard. Unknown non-API paths fall back to
// index.html so client-side routing works after a page reload.
func (s *Server) serveStatic() {
	dir := s.cfg.Static.Dir
	if _, err := os.Stat(dir); err != nil {
		s.log.Warn("static directory not found, serving API only", zap.String("dir", dir))
		return
	}

	index := filepath.Join(dir, "index.html")
	s.router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		requested := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(index)
	})
}

func requestMetrics() gin.HandlerFunc {
	m := metrics.Global()
	return func(c *gin.Context) {
		c.Next()
		m.RequestsTotal.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func (s *Server) Run() error {
	s.srv = &http.Server{
		Addr:    ":" + s.cfg.Server.Port,
		Handler: s.router,
	}

	s.log.Info("server starting", zap.String("port", s.cfg.Server.Port))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
