package handlers

import (
  "errors"
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/idea-incubator/internal/services"
)

type EnrichmentHandler struct {
  enrichmentService       services.EnrichmentService
}

func NewEnrichmentHandler(enrichmentService services.EnrichmentService) *EnrichmentHandler {
  return &EnrichmentHandler{enrichmentService: enrichmentService}
}

func (eh *EnrichmentHandler) Enhance(c *gin.Context) {
  ideaID, ok := parseIdeaID(c)
  if !ok {
    return
  }
  userID, ok := currentUserID(c)
  if !ok {
    RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
    return
  }
  idea, err := eh.enrichmentService.EnhanceIdea(c.Request.Context(), userID, ideaID)
  if err != nil {
    status, code := ideaErrorStatus(err)
    RespondError(c, status, code, err)
    return
  }
  RespondOK(c, gin.H{
    "idea":              idea,
    "feasibility_score": idea.FeasibilityScore(),
  })
}

func (eh *EnrichmentHandler) GenerateInsights(c *gin.Context) {
  ideaID, ok := parseIdeaID(c)
  if !ok {
    return
  }
  userID, ok := currentUserID(c)
  if !ok {
    RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
    return
  }
  forceRegenerate := false
  if v := c.Query("force_regenerate"); v != "" {
    parsed, err := strconv.ParseBool(v)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_request", err)
      return
    }
    forceRegenerate = parsed
  }
  summary, err := eh.enrichmentService.GenerateInsights(c.Request.Context(), userID, ideaID, forceRegenerate)
  if err != nil {
    status, code := ideaErrorStatus(err)
    RespondError(c, status, code, err)
    return
  }
  RespondOK(c, summary)
}

func (eh *EnrichmentHandler) GetInsightsHistory(c *gin.Context) {
  ideaID, ok := parseIdeaID(c)
  if !ok {
    return
  }
  userID, ok := currentUserID(c)
  if !ok {
    RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
    return
  }
  history, err := eh.enrichmentService.GetInsightsHistory(c.Request.Context(), userID, ideaID)
  if err != nil {
    status, code := ideaErrorStatus(err)
    RespondError(c, status, code, err)
    return
  }
  RespondOK(c, history)
}

func (eh *EnrichmentHandler) DeleteInsights(c *gin.Context) {
  ideaID, ok := parseIdeaID(c)
  if !ok {
    return
  }
  userID, ok := currentUserID(c)
  if !ok {
    RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
    return
  }
  if err := eh.enrichmentService.DeleteInsights(c.Request.Context(), userID, ideaID); err != nil {
    status, code := ideaErrorStatus(err)
    RespondError(c, status, code, err)
    return
  }
  RespondOK(c, gin.H{"message": "Insights deleted successfully"})
}

func (eh *EnrichmentHandler) OptimizeTitle(c *gin.Context) {
  ideaID, ok := parseIdeaID(c)
  if !ok {
    return
  }
  userID, ok := currentUserID(c)
  if !ok {
    RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
    return
  }
  suggestions, err := eh.enrichmentService.OptimizeTitle(c.Request.Context(), userID, ideaID)
  if err != nil {
    status, code := ideaErrorStatus(err)
    RespondError(c, status, code, err)
    return
  }
  RespondOK(c, gin.H{"suggestions": suggestions})
}
