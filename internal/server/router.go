package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/yungbote/idea-incubator/internal/handlers"
  "github.com/yungbote/idea-incubator/internal/middleware"
)

type RouterConfig struct {
  AllowedOrigins      []string
  EnableDebug         bool
  AuthHandler         *handlers.AuthHandler
  AuthMiddleware      *middleware.AuthMiddleware
  UserHandler         *handlers.UserHandler
  IdeaHandler         *handlers.IdeaHandler
  EnrichmentHandler   *handlers.EnrichmentHandler
  HealthcheckHandler  *handlers.HealthcheckHandler
  DebugHandler        *handlers.DebugHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()
  router.Use(otelgin.Middleware("idea-incubator"))

  // Cors
  origins := cfg.AllowedOrigins
  if len(origins) == 0 {
    origins = []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    }
  }
  router.Use(cors.New(cors.Config{
    AllowOrigins:     origins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", cfg.HealthcheckHandler.Healthcheck)
  api := router.Group("/api")
  {
    api.POST("/auth/register", cfg.AuthHandler.Register)
    api.POST("/auth/login", cfg.AuthHandler.Login)
  }

// ===============
// || Protected ||
// ===============
  protected := api.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.POST("/auth/refresh", cfg.AuthHandler.Refresh)
  protected.POST("/auth/logout", cfg.AuthHandler.Logout)
  // User
  protected.GET("/user/me", cfg.UserHandler.GetMe)
  // Ideas
  protected.POST("/ideas", cfg.IdeaHandler.Create)
  protected.GET("/ideas", cfg.IdeaHandler.List)
  protected.GET("/ideas/:id", cfg.IdeaHandler.Get)
  protected.PUT("/ideas/:id", cfg.IdeaHandler.Update)
  protected.DELETE("/ideas/:id", cfg.IdeaHandler.Delete)
  // Enrichment
  protected.POST("/ideas/:id/enhance", cfg.EnrichmentHandler.Enhance)
  protected.GET("/ideas/:id/insights", cfg.EnrichmentHandler.GenerateInsights)
  protected.GET("/ideas/:id/insights/history", cfg.EnrichmentHandler.GetInsightsHistory)
  protected.DELETE("/ideas/:id/insights", cfg.EnrichmentHandler.DeleteInsights)
  protected.POST("/ideas/:id/optimize-title", cfg.EnrichmentHandler.OptimizeTitle)

// ===============
// || Debug     ||
// ===============
  if cfg.EnableDebug && cfg.DebugHandler != nil {
    router.GET("/debug/database-check", cfg.AuthMiddleware.RequireAuth(), cfg.DebugHandler.DatabaseCheck)
  }

  return router
}
