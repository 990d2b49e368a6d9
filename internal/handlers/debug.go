package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "gorm.io/gorm"
  "github.com/yungbote/idea-incubator/internal/repos"
  "github.com/yungbote/idea-incubator/internal/types"
)

// DebugHandler exposes a database sanity check. Only mounted outside
// production.
type DebugHandler struct {
  db        *gorm.DB
  ideaRepo  repos.IdeaRepo
  userRepo  repos.UserRepo
}

func NewDebugHandler(db *gorm.DB, ideaRepo repos.IdeaRepo, userRepo repos.UserRepo) *DebugHandler {
  return &DebugHandler{db: db, ideaRepo: ideaRepo, userRepo: userRepo}
}

func (dh *DebugHandler) DatabaseCheck(c *gin.Context) {
  ctx := c.Request.Context()

  var probe int
  if err := dh.db.WithContext(ctx).Raw("SELECT 1").Scan(&probe).Error; err != nil {
    RespondError(c, http.StatusInternalServerError, "database_unreachable", err)
    return
  }

  ideasCount, err := dh.ideaRepo.Count(ctx, nil)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "count_failed", err)
    return
  }
  usersCount, err := dh.userRepo.Count(ctx, nil)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "count_failed", err)
    return
  }

  sampleIdeas, _, err := dh.ideaRepo.List(ctx, nil, repos.IdeaFilter{Limit: 3})
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "sample_failed", err)
    return
  }
  samples := make([]gin.H, 0, len(sampleIdeas))
  for _, idea := range sampleIdeas {
    samples = append(samples, gin.H{
      "id":                idea.ID,
      "title":             idea.Title,
      "created_by":        idea.CreatedBy,
      "development_stage": idea.DevelopmentStage,
      "ai_validated":      idea.AIValidated,
    })
  }

  var sampleUsers []*types.User
  if err := dh.db.WithContext(ctx).Limit(3).Find(&sampleUsers).Error; err != nil {
    RespondError(c, http.StatusInternalServerError, "sample_failed", err)
    return
  }
  userSamples := make([]gin.H, 0, len(sampleUsers))
  for _, user := range sampleUsers {
    userSamples = append(userSamples, gin.H{
      "id":       user.ID,
      "username": user.Username,
      "email":    user.Email,
      "role":     user.Role,
    })
  }

  RespondOK(c, gin.H{
    "database_connection":    "OK",
    "connection_test_result": probe,
    "ideas_count":            ideasCount,
    "users_count":            usersCount,
    "sample_ideas":           samples,
    "sample_users":           userSamples,
  })
}
