package services

import (
  "context"
  "testing"

  "github.com/google/uuid"
  "github.com/stretchr/testify/require"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/yungbote/idea-incubator/internal/clients/gemini"
  "github.com/yungbote/idea-incubator/internal/logger"
  "github.com/yungbote/idea-incubator/internal/repos"
  "github.com/yungbote/idea-incubator/internal/types"
)

func setupCallLogTest(t *testing.T) (CallObserver, *gorm.DB) {
  t.Helper()
  db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
  require.NoError(t, err)
  sqlDB, err := db.DB()
  require.NoError(t, err)
  sqlDB.SetMaxOpenConns(1)
  require.NoError(t, db.AutoMigrate(&types.AICallLog{}))

  log, err := logger.New("test")
  require.NoError(t, err)
  return NewDBCallObserver(repos.NewAICallLogRepo(db, log), log), db
}

func TestDBCallObserverPersistsOutcome(t *testing.T) {
  observer, db := setupCallLogTest(t)
  userID := uuid.New()
  ideaID := uuid.New()

  observer.Record(context.Background(), CallRecord{
    UserID:   &userID,
    IdeaID:   &ideaID,
    CallType: "idea_refinement",
    Model:    "gemini-test",
    Prompt:   "refine this",
    Response: "refined",
    Success:  true,
    Usage:    &gemini.Usage{PromptTokens: 17, CandidateTokens: 240, TotalTokens: 257},
  })

  var row types.AICallLog
  require.NoError(t, db.First(&row).Error)
  require.Equal(t, "idea_refinement", row.CallType)
  require.Equal(t, "gemini-test", row.Model)
  require.True(t, row.Success)
  require.JSONEq(t, `{"prompt_tokens":17,"candidate_tokens":240,"total_tokens":257}`, string(row.Usage))
}

func TestDBCallObserverRecordsFailuresWithoutUsage(t *testing.T) {
  observer, db := setupCallLogTest(t)

  observer.Record(context.Background(), CallRecord{
    CallType: "comprehensive_risk_assessment",
    Model:    "gemini-test",
    Prompt:   "assess risk",
    Success:  false,
    Error:    "gemini: generate failed after 3 attempts",
  })

  var row types.AICallLog
  require.NoError(t, db.First(&row).Error)
  require.False(t, row.Success)
  require.NotEmpty(t, row.Error)
  require.Empty(t, row.Usage)
}
