package services

import (
  "context"
  "fmt"
  "testing"

  "github.com/google/uuid"
  "github.com/stretchr/testify/require"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/yungbote/idea-incubator/internal/logger"
  "github.com/yungbote/idea-incubator/internal/repos"
  "github.com/yungbote/idea-incubator/internal/types"
)

func setupIdeaTest(t *testing.T) (IdeaService, *gorm.DB, uuid.UUID) {
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
    Username: "founder",
    Email:    "founder@example.com",
    Password: "irrelevant",
    Role:     types.RoleContributor,
  }
  require.NoError(t, db.Create(user).Error)

  svc := NewIdeaService(db, repos.NewIdeaRepo(db, log), repos.NewInsightRepo(db, log), log)
  return svc, db, user.ID
}

func TestCreateIdeaDefaults(t *testing.T) {
  svc, _, userID := setupIdeaTest(t)

  idea, err := svc.CreateIdea(context.Background(), userID, &types.Idea{
    Title:            "  Vertical farm kits  ",
    Description:      "Modular hydroponic kits for apartment balconies.",
    DevelopmentStage: types.StageConcept,
  })
  require.NoError(t, err)
  require.Equal(t, "Vertical farm kits", idea.Title)
  require.Equal(t, userID, idea.CreatedBy)
  require.False(t, idea.AIValidated)
  require.Nil(t, idea.AIRefinedPitch)
  require.Equal(t, 5.0, *idea.MarketPotential)
  require.Equal(t, 5.0, *idea.TechnicalComplexity)
  require.Equal(t, 5.0, *idea.ResourceRequirements)

  _, err = svc.CreateIdea(context.Background(), userID, &types.Idea{
    Title:            "Bad stage",
    Description:      "Stage outside the enum must be rejected.",
    DevelopmentStage: "incubating",
  })
  require.Error(t, err)
}

func TestListIdeasPagination(t *testing.T) {
  svc, _, userID := setupIdeaTest(t)

  for i := 0; i < 12; i++ {
    _, err := svc.CreateIdea(context.Background(), userID, &types.Idea{
      Title:            fmt.Sprintf("Idea %02d", i),
      Description:      "A description long enough to be plausible for listing tests.",
      DevelopmentStage: types.StageConcept,
    })
    require.NoError(t, err)
  }

  page, err := svc.ListIdeas(context.Background(), repos.IdeaFilter{})
  require.NoError(t, err)
  require.EqualValues(t, 12, page.Total)
  require.Len(t, page.Items, 10, "default page size is 10")
  require.True(t, page.HasNext)

  page, err = svc.ListIdeas(context.Background(), repos.IdeaFilter{Skip: 10, Limit: 10})
  require.NoError(t, err)
  require.Len(t, page.Items, 2)
  require.False(t, page.HasNext)

  page, err = svc.ListIdeas(context.Background(), repos.IdeaFilter{Limit: 500})
  require.NoError(t, err)
  require.Equal(t, 100, page.Limit, "limit is capped")
}

func TestUpdateIdeaOwnerOnly(t *testing.T) {
  svc, _, userID := setupIdeaTest(t)

  idea, err := svc.CreateIdea(context.Background(), userID, &types.Idea{
    Title:            "Original title",
    Description:      "Original description with enough length to pass.",
    DevelopmentStage: types.StageConcept,
  })
  require.NoError(t, err)

  title := "Renamed title"
  stage := types.StageResearch
  _, err = svc.UpdateIdea(context.Background(), uuid.New(), idea.ID, IdeaUpdate{Title: &title})
  require.ErrorIs(t, err, ErrNotOwner)

  updated, err := svc.UpdateIdea(context.Background(), userID, idea.ID, IdeaUpdate{Title: &title, DevelopmentStage: &stage})
  require.NoError(t, err)
  require.Equal(t, "Renamed title", updated.Title)
  require.Equal(t, types.StageResearch, updated.DevelopmentStage)
  require.Equal(t, "Original description with enough length to pass.", updated.Description)

  market := 8.5
  updated, err = svc.UpdateIdea(context.Background(), userID, idea.ID, IdeaUpdate{MarketPotential: &market})
  require.NoError(t, err)
  require.Equal(t, 8.5, *updated.MarketPotential)
  require.Equal(t, 5.0, *updated.TechnicalComplexity, "untouched dimensions keep their value")

  bad := types.DevelopmentStage("shipped")
  _, err = svc.UpdateIdea(context.Background(), userID, idea.ID, IdeaUpdate{DevelopmentStage: &bad})
  require.Error(t, err)
}

func TestDeleteIdeaCascadesToInsight(t *testing.T) {
  svc, db, userID := setupIdeaTest(t)

  idea, err := svc.CreateIdea(context.Background(), userID, &types.Idea{
    Title:            "Doomed idea",
    Description:      "This idea and its insight record both get removed.",
    DevelopmentStage: types.StageConcept,
  })
  require.NoError(t, err)

  insight := &types.IdeaInsight{ID: uuid.New(), IdeaID: idea.ID, GenerationVersion: 1}
  require.NoError(t, db.Create(insight).Error)

  require.ErrorIs(t, svc.DeleteIdea(context.Background(), uuid.New(), idea.ID), ErrNotOwner)
  require.NoError(t, svc.DeleteIdea(context.Background(), userID, idea.ID))

  var count int64
  require.NoError(t, db.Unscoped().Model(&types.IdeaInsight{}).Where("idea_id = ?", idea.ID).Count(&count).Error)
  require.EqualValues(t, 0, count)

  require.ErrorIs(t, svc.DeleteIdea(context.Background(), userID, idea.ID), ErrIdeaNotFound)

  _, err = svc.GetIdea(context.Background(), idea.ID)
  require.ErrorIs(t, err, ErrIdeaNotFound)
}
