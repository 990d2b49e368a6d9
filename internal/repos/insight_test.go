package repos

import (
  "context"
  "testing"

  "github.com/google/uuid"
  "github.com/stretchr/testify/require"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/yungbote/idea-incubator/internal/logger"
  "github.com/yungbote/idea-incubator/internal/types"
)

func setupRepoTest(t *testing.T) (*gorm.DB, *logger.Logger, uuid.UUID) {
  t.Helper()
  db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
  require.NoError(t, err)
  sqlDB, err := db.DB()
  require.NoError(t, err)
  sqlDB.SetMaxOpenConns(1)
  require.NoError(t, db.AutoMigrate(&types.User{}, &types.Idea{}, &types.IdeaInsight{}))

  log, err := logger.New("test")
  require.NoError(t, err)

  user := &types.User{
    ID:       uuid.New(),
    Username: "author",
    Email:    "author@example.com",
    Password: "irrelevant",
    Role:     types.RoleContributor,
  }
  require.NoError(t, db.Create(user).Error)

  idea := &types.Idea{
    ID:               uuid.New(),
    Title:            "Compost subscription service",
    Description:      "Weekly pickup of food scraps turned into garden compost for members.",
    DevelopmentStage: types.StageConcept,
    CreatedBy:        user.ID,
  }
  require.NoError(t, db.Create(idea).Error)
  return db, log, idea.ID
}

func TestInsightRepoRoundTrip(t *testing.T) {
  db, log, ideaID := setupRepoTest(t)
  repo := NewInsightRepo(db, log)
  ctx := context.Background()

  missing, err := repo.GetByIdeaID(ctx, nil, ideaID)
  require.NoError(t, err)
  require.Nil(t, missing)

  insight := &types.IdeaInsight{
    ID:                    uuid.New(),
    IdeaID:                ideaID,
    MarketInsights:        "market text",
    RiskAssessment:        "risk text",
    ImplementationRoadmap: "roadmap text",
    IsAIGenerated:         true,
    GenerationVersion:     1,
  }
  require.NoError(t, repo.Create(ctx, nil, insight))

  loaded, err := repo.GetByIdeaID(ctx, nil, ideaID)
  require.NoError(t, err)
  require.NotNil(t, loaded)
  require.Equal(t, "market text", loaded.MarketInsights)
  require.Equal(t, 1, loaded.GenerationVersion)

  loaded.GenerationVersion = 2
  loaded.MarketInsights = "regenerated market text"
  require.NoError(t, repo.Save(ctx, nil, loaded))

  reloaded, err := repo.GetByIdeaID(ctx, nil, ideaID)
  require.NoError(t, err)
  require.Equal(t, 2, reloaded.GenerationVersion)
  require.Equal(t, "regenerated market text", reloaded.MarketInsights)
}

func TestInsightRepoOneRecordPerIdea(t *testing.T) {
  db, log, ideaID := setupRepoTest(t)
  repo := NewInsightRepo(db, log)
  ctx := context.Background()

  first := &types.IdeaInsight{ID: uuid.New(), IdeaID: ideaID, GenerationVersion: 1}
  require.NoError(t, repo.Create(ctx, nil, first))

  duplicate := &types.IdeaInsight{ID: uuid.New(), IdeaID: ideaID, GenerationVersion: 1}
  require.Error(t, repo.Create(ctx, nil, duplicate), "idea_id is unique")
}

func TestInsightRepoFullDelete(t *testing.T) {
  db, log, ideaID := setupRepoTest(t)
  repo := NewInsightRepo(db, log)
  ctx := context.Background()

  deleted, err := repo.FullDeleteByIdeaID(ctx, nil, ideaID)
  require.NoError(t, err)
  require.False(t, deleted)

  insight := &types.IdeaInsight{ID: uuid.New(), IdeaID: ideaID, GenerationVersion: 1}
  require.NoError(t, repo.Create(ctx, nil, insight))

  deleted, err = repo.FullDeleteByIdeaID(ctx, nil, ideaID)
  require.NoError(t, err)
  require.True(t, deleted)

  // Unscoped delete leaves no soft-deleted row behind.
  var count int64
  require.NoError(t, db.Unscoped().Model(&types.IdeaInsight{}).Where("idea_id = ?", ideaID).Count(&count).Error)
  require.EqualValues(t, 0, count)
}

func TestIdeaRepoListFilters(t *testing.T) {
  db, log, _ := setupRepoTest(t)
  repo := NewIdeaRepo(db, log)
  ctx := context.Background()

  var owner types.User
  require.NoError(t, db.First(&owner).Error)

  launch := &types.Idea{
    ID:               uuid.New(),
    Title:            "Drone light shows",
    Description:      "Choreographed drone swarms as an alternative to fireworks displays.",
    DevelopmentStage: types.StageLaunch,
    AIValidated:      true,
    CreatedBy:        owner.ID,
  }
  _, err := repo.Create(ctx, nil, []*types.Idea{launch})
  require.NoError(t, err)

  stage := types.StageLaunch
  items, total, err := repo.List(ctx, nil, IdeaFilter{Stage: &stage, Limit: 10})
  require.NoError(t, err)
  require.EqualValues(t, 1, total)
  require.Len(t, items, 1)
  require.Equal(t, "Drone light shows", items[0].Title)

  validated := true
  items, total, err = repo.List(ctx, nil, IdeaFilter{AIValidated: &validated, Limit: 10})
  require.NoError(t, err)
  require.EqualValues(t, 1, total)
  require.Len(t, items, 1)

  items, total, err = repo.List(ctx, nil, IdeaFilter{Search: "compost", Limit: 10})
  require.NoError(t, err)
  require.EqualValues(t, 1, total)
  require.Len(t, items, 1)
  require.Equal(t, "Compost subscription service", items[0].Title)

  items, total, err = repo.List(ctx, nil, IdeaFilter{Limit: 1})
  require.NoError(t, err)
  require.EqualValues(t, 2, total)
  require.Len(t, items, 1)
}
