package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/yungbote/idea-incubator/internal/types"
  "github.com/yungbote/idea-incubator/internal/utils"
  "github.com/yungbote/idea-incubator/internal/logger"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "incubator", log)

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  serviceLog.Info("Connecting to Postgres...")
  gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    serviceLog.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  return &PostgresService{db: gormDB, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.User{},
    &types.UserToken{},
    &types.Idea{},
    &types.IdeaInsight{},
    &types.AICallLog{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  s.log.Info("Configuring foreign key relationships for postgres tables...")
  constraints := []struct {
    table string
    name  string
    ddl   string
  }{
    {"user_token", "fk_user_token_user_id", `
      ALTER TABLE "user_token"
      ADD CONSTRAINT "fk_user_token_user_id"
      FOREIGN KEY ("user_id")
      REFERENCES "user"("id")
      ON DELETE CASCADE
    `},
    {"idea", "fk_idea_created_by", `
      ALTER TABLE "idea"
      ADD CONSTRAINT "fk_idea_created_by"
      FOREIGN KEY ("created_by")
      REFERENCES "user"("id")
      ON DELETE CASCADE
    `},
    {"idea_insight", "fk_idea_insight_idea_id", `
      ALTER TABLE "idea_insight"
      ADD CONSTRAINT "fk_idea_insight_idea_id"
      FOREIGN KEY ("idea_id")
      REFERENCES "idea"("id")
      ON DELETE CASCADE
    `},
  }
  for _, c := range constraints {
    if s.db.Migrator().HasConstraint(c.table, c.name) {
      continue
    }
    if err := s.db.Exec(c.ddl).Error; err != nil {
      return fmt.Errorf("Failed to add %s: %w", c.name, err)
    }
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
