package main

import (
  "context"
  "fmt"
  "os"
  "strings"
  "time"
  "github.com/joho/godotenv"
  "github.com/yungbote/idea-incubator/internal/clients/gemini"
  "github.com/yungbote/idea-incubator/internal/clients/redis"
  "github.com/yungbote/idea-incubator/internal/db"
  "github.com/yungbote/idea-incubator/internal/handlers"
  "github.com/yungbote/idea-incubator/internal/logger"
  "github.com/yungbote/idea-incubator/internal/middleware"
  "github.com/yungbote/idea-incubator/internal/observability"
  "github.com/yungbote/idea-incubator/internal/repos"
  "github.com/yungbote/idea-incubator/internal/server"
  "github.com/yungbote/idea-incubator/internal/services"
  "github.com/yungbote/idea-incubator/internal/utils"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  environment := utils.GetEnv("ENVIRONMENT", "development", log)
  port := utils.GetEnv("PORT", "8000", log)
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
  corsOrigins := utils.GetEnv("CORS_ORIGINS", "", log)

  // Tracing
  otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: "idea-incubator",
    Environment: environment,
    Version:     utils.GetEnv("SERVICE_VERSION", "dev", log),
  })
  if otelShutdown != nil {
    defer func() {
      ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
      defer cancel()
      if err := otelShutdown(ctx); err != nil {
        log.Warn("otel shutdown error", "error", err)
      }
    }()
  }

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Fatal("Postgres init failed", "error", err)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Fatal("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  userTokenRepo := repos.NewUserTokenRepo(thePG, log)
  ideaRepo := repos.NewIdeaRepo(thePG, log)
  insightRepo := repos.NewInsightRepo(thePG, log)
  aiCallLogRepo := repos.NewAICallLogRepo(thePG, log)

  // Clients
  log.Info("Setting up Clients from main...")
  geminiClient, err := gemini.NewFromEnv(log)
  if err != nil {
    log.Fatal("Could not init Gemini client", "error", err)
  }
  cache, err := redis.NewFromEnv(log)
  if err != nil {
    log.Warn("Redis init failed, continuing without cache", "error", err)
    cache = nil
  }
  if cache != nil {
    defer cache.Close()
  }

  // Services
  log.Info("Setting up Services from main...")
  callObserver := services.NewDBCallObserver(aiCallLogRepo, log)
  authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
  userService := services.NewUserService(thePG, userRepo, log)
  ideaService := services.NewIdeaService(thePG, ideaRepo, insightRepo, log)
  enrichmentService := services.NewEnrichmentService(thePG, ideaRepo, insightRepo, geminiClient, callObserver, cache, log)

  // Handlers
  log.Info("Setting up Handlers from main...")
  healthcheckHandler := handlers.NewHealthcheckHandler()
  authHandler := handlers.NewAuthHandler(authService)
  userHandler := handlers.NewUserHandler(userService)
  ideaHandler := handlers.NewIdeaHandler(ideaService)
  enrichmentHandler := handlers.NewEnrichmentHandler(enrichmentService)
  debugHandler := handlers.NewDebugHandler(thePG, ideaRepo, userRepo)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  var origins []string
  if corsOrigins != "" {
    for _, origin := range strings.Split(corsOrigins, ",") {
      if trimmed := strings.TrimSpace(origin); trimmed != "" {
        origins = append(origins, trimmed)
      }
    }
  }
  router := server.NewRouter(server.RouterConfig{
    AllowedOrigins:     origins,
    EnableDebug:        environment != "production",
    AuthHandler:        authHandler,
    AuthMiddleware:     authMiddleware,
    UserHandler:        userHandler,
    IdeaHandler:        ideaHandler,
    EnrichmentHandler:  enrichmentHandler,
    HealthcheckHandler: healthcheckHandler,
    DebugHandler:       debugHandler,
  })

  log.Info("Starting server", "port", port, "environment", environment)
  if err := router.Run(":" + port); err != nil {
    log.Fatal("Server exited", "error", err)
  }
}
