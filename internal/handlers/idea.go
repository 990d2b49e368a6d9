package handlers

import (
  "errors"
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/idea-incubator/internal/repos"
  "github.com/yungbote/idea-incubator/internal/requestdata"
  "github.com/yungbote/idea-incubator/internal/services"
  "github.com/yungbote/idea-incubator/internal/types"
)

type IdeaHandler struct {
  ideaService       services.IdeaService
}

func NewIdeaHandler(ideaService services.IdeaService) *IdeaHandler {
  return &IdeaHandler{ideaService: ideaService}
}

// ideaErrorStatus maps service sentinels onto HTTP statuses so every handler
// reports ownership and existence failures the same way.
func ideaErrorStatus(err error) (int, string) {
  switch {
  case errors.Is(err, services.ErrIdeaNotFound):
    return http.StatusNotFound, "idea_not_found"
  case errors.Is(err, services.ErrInsightNotFound):
    return http.StatusNotFound, "insights_not_found"
  case errors.Is(err, services.ErrNotOwner):
    return http.StatusForbidden, "not_owner"
  }
  return http.StatusInternalServerError, "internal_error"
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    return uuid.Nil, false
  }
  return rd.UserID, true
}

func parseIdeaID(c *gin.Context) (uuid.UUID, bool) {
  ideaID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_idea_id", err)
    return uuid.Nil, false
  }
  return ideaID, true
}

func (ih *IdeaHandler) Create(c *gin.Context) {
  var req struct {
    Title            string                 `json:"title" binding:"required,min=1,max=200"`
    Description      string                 `json:"description" binding:"required,min=10,max=2000"`
    DevelopmentStage types.DevelopmentStage `json:"development_stage" binding:"required"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  userID, ok := currentUserID(c)
  if !ok {
    RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
    return
  }
  idea := &types.Idea{
    Title:            req.Title,
    Description:      req.Description,
    DevelopmentStage: req.DevelopmentStage,
  }
  created, err := ih.ideaService.CreateIdea(c.Request.Context(), userID, idea)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "create_failed", err)
    return
  }
  RespondCreated(c, created)
}

func (ih *IdeaHandler) List(c *gin.Context) {
  filter := repos.IdeaFilter{Skip: 0, Limit: 10}
  if v := c.Query("skip"); v != "" {
    if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
      filter.Skip = parsed
    }
  }
  if v := c.Query("limit"); v != "" {
    if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
      filter.Limit = parsed
    }
  }
  if v := c.Query("stage"); v != "" {
    stage := types.DevelopmentStage(v)
    if !stage.Valid() {
      RespondError(c, http.StatusBadRequest, "invalid_stage", errors.New("unknown development stage"))
      return
    }
    filter.Stage = &stage
  }
  if v := c.Query("ai_validated"); v != "" {
    parsed, err := strconv.ParseBool(v)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_filter", err)
      return
    }
    filter.AIValidated = &parsed
  }
  filter.Search = c.Query("search")

  page, err := ih.ideaService.ListIdeas(c.Request.Context(), filter)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "list_failed", err)
    return
  }
  RespondOK(c, page)
}

func (ih *IdeaHandler) Get(c *gin.Context) {
  ideaID, ok := parseIdeaID(c)
  if !ok {
    return
  }
  idea, err := ih.ideaService.GetIdea(c.Request.Context(), ideaID)
  if err != nil {
    status, code := ideaErrorStatus(err)
    RespondError(c, status, code, err)
    return
  }
  RespondOK(c, idea)
}

func (ih *IdeaHandler) Update(c *gin.Context) {
  ideaID, ok := parseIdeaID(c)
  if !ok {
    return
  }
  userID, ok := currentUserID(c)
  if !ok {
    RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
    return
  }
  var req struct {
    Title                *string                 `json:"title" binding:"omitempty,min=1,max=200"`
    Description          *string                 `json:"description" binding:"omitempty,min=10,max=2000"`
    DevelopmentStage     *types.DevelopmentStage `json:"development_stage"`
    MarketPotential      *float64                `json:"market_potential" binding:"omitempty,gte=1.0,lte=10.0"`
    TechnicalComplexity  *float64                `json:"technical_complexity" binding:"omitempty,gte=1.0,lte=10.0"`
    ResourceRequirements *float64                `json:"resource_requirements" binding:"omitempty,gte=1.0,lte=10.0"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  update := services.IdeaUpdate{
    Title:                req.Title,
    Description:          req.Description,
    DevelopmentStage:     req.DevelopmentStage,
    MarketPotential:      req.MarketPotential,
    TechnicalComplexity:  req.TechnicalComplexity,
    ResourceRequirements: req.ResourceRequirements,
  }
  idea, err := ih.ideaService.UpdateIdea(c.Request.Context(), userID, ideaID, update)
  if err != nil {
    status, code := ideaErrorStatus(err)
    if status == http.StatusInternalServerError {
      status, code = http.StatusBadRequest, "update_failed"
    }
    RespondError(c, status, code, err)
    return
  }
  RespondOK(c, idea)
}

func (ih *IdeaHandler) Delete(c *gin.Context) {
  ideaID, ok := parseIdeaID(c)
  if !ok {
    return
  }
  userID, ok := currentUserID(c)
  if !ok {
    RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
    return
  }
  if err := ih.ideaService.DeleteIdea(c.Request.Context(), userID, ideaID); err != nil {
    status, code := ideaErrorStatus(err)
    RespondError(c, status, code, err)
    return
  }
  RespondOK(c, gin.H{"message": "Idea deleted successfully"})
}
