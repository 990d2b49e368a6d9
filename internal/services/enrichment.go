package services

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "strings"
  "time"

  "github.com/google/uuid"
  "golang.org/x/sync/errgroup"
  "gorm.io/gorm"

  "github.com/yungbote/idea-incubator/internal/clients/gemini"
  "github.com/yungbote/idea-incubator/internal/clients/redis"
  "github.com/yungbote/idea-incubator/internal/logger"
  "github.com/yungbote/idea-incubator/internal/repos"
  "github.com/yungbote/idea-incubator/internal/types"
)

var (
  ErrIdeaNotFound    = errors.New("idea not found")
  ErrInsightNotFound = errors.New("no insights found for this idea")
  ErrNotOwner        = errors.New("not the owner of this idea")
)

const (
  callTypeRefinement  = "idea_refinement"
  callTypeFeasibility = "feasibility_analysis"
  callTypeMarket      = "comprehensive_market_insights"
  callTypeRisk        = "comprehensive_risk_assessment"
  callTypeRoadmap     = "detailed_implementation_roadmap"
  callTypeTitle       = "title_optimization_and_branding"
)

// minArtifactLength guards against degenerate model output: anything shorter
// is treated as a failed generation and replaced by the fallback text.
const minArtifactLength = 50

// InsightSummary is the API shape for a stored insight record.
type InsightSummary struct {
  IdeaID                uuid.UUID `json:"idea_id"`
  IdeaTitle             string    `json:"idea_title"`
  MarketInsights        string    `json:"market_insights"`
  RiskAssessment        string    `json:"risk_assessment"`
  ImplementationRoadmap string    `json:"implementation_roadmap"`
  IsAIGenerated         bool      `json:"is_ai_generated"`
  GenerationVersion     int       `json:"generation_version"`
  GeneratedAt           time.Time `json:"generated_at"`
  LastUpdated           time.Time `json:"last_updated"`
}

// InsightsHistory summarizes the generation lineage of an idea's insights.
type InsightsHistory struct {
  HasInsights    bool       `json:"has_insights"`
  InsightsCount  int        `json:"insights_count"`
  CurrentVersion int        `json:"current_version"`
  FirstGenerated *time.Time `json:"first_generated,omitempty"`
  LastUpdated    *time.Time `json:"last_updated,omitempty"`
  IsAIGenerated  bool       `json:"is_ai_generated"`
}

type EnrichmentService interface {
  EnhanceIdea(ctx context.Context, userID, ideaID uuid.UUID) (*types.Idea, error)
  GenerateInsights(ctx context.Context, userID, ideaID uuid.UUID, forceRegenerate bool) (*InsightSummary, error)
  GetInsightsHistory(ctx context.Context, userID, ideaID uuid.UUID) (*InsightsHistory, error)
  DeleteInsights(ctx context.Context, userID, ideaID uuid.UUID) error
  OptimizeTitle(ctx context.Context, userID, ideaID uuid.UUID) (string, error)
}

type enrichmentService struct {
  db          *gorm.DB
  ideaRepo    repos.IdeaRepo
  insightRepo repos.InsightRepo
  ai          gemini.Client
  observer    CallObserver
  cache       *redis.Cache
  log         *logger.Logger
}

func NewEnrichmentService(
  db *gorm.DB,
  ideaRepo repos.IdeaRepo,
  insightRepo repos.InsightRepo,
  ai gemini.Client,
  observer CallObserver,
  cache *redis.Cache,
  baseLog *logger.Logger,
) EnrichmentService {
  serviceLog := baseLog.With("service", "EnrichmentService")
  return &enrichmentService{
    db:          db,
    ideaRepo:    ideaRepo,
    insightRepo: insightRepo,
    ai:          ai,
    observer:    observer,
    cache:       cache,
    log:         serviceLog,
  }
}

func (s *enrichmentService) ownedIdea(ctx context.Context, userID, ideaID uuid.UUID) (*types.Idea, error) {
  idea, err := s.ideaRepo.GetByID(ctx, nil, ideaID)
  if err != nil {
    return nil, fmt.Errorf("failed to load idea: %w", err)
  }
  if idea == nil {
    return nil, ErrIdeaNotFound
  }
  if idea.CreatedBy != userID {
    return nil, ErrNotOwner
  }
  return idea, nil
}

func (s *enrichmentService) generate(ctx context.Context, callType, prompt string, userID, ideaID uuid.UUID) (string, error) {
  text, usage, err := s.ai.Generate(ctx, prompt)
  record := CallRecord{
    UserID:   &userID,
    IdeaID:   &ideaID,
    CallType: callType,
    Model:    s.ai.Model(),
    Prompt:   prompt,
    Response: text,
    Success:  err == nil,
    Usage:    usage,
  }
  if err != nil {
    record.Error = err.Error()
  }
  s.observer.Record(ctx, record)
  return text, err
}

// EnhanceIdea refines the pitch and scores the three feasibility dimensions.
// Each step falls back to deterministic content when the model fails, so the
// call itself only errors on ownership or persistence problems. AIValidated is
// set once and never cleared.
func (s *enrichmentService) EnhanceIdea(ctx context.Context, userID, ideaID uuid.UUID) (*types.Idea, error) {
  idea, err := s.ownedIdea(ctx, userID, ideaID)
  if err != nil {
    return nil, err
  }

  refined, genErr := s.generate(ctx, callTypeRefinement,
    buildRefinementPrompt(idea.Title, idea.Description, idea.DevelopmentStage), userID, ideaID)
  if genErr != nil {
    s.log.Warn("refinement failed, using fallback", "idea_id", ideaID, "error", genErr)
    refined = fallbackRefinement(idea.Title, idea.Description, idea.DevelopmentStage)
  } else if !strings.HasPrefix(refined, "**") {
    refined = "**Enhanced Business Pitch**\n\n" + refined
  }
  idea.AIRefinedPitch = &refined

  scores := s.scoreIdea(ctx, userID, idea)
  idea.MarketPotential = &scores.MarketPotential
  idea.TechnicalComplexity = &scores.TechnicalComplexity
  idea.ResourceRequirements = &scores.ResourceRequirements
  idea.AIValidated = true

  if err := s.ideaRepo.Save(ctx, nil, idea); err != nil {
    return nil, fmt.Errorf("failed to save enhanced idea: %w", err)
  }
  s.log.Info("idea enhanced", "idea_id", ideaID,
    "market", scores.MarketPotential, "technical", scores.TechnicalComplexity,
    "resource", scores.ResourceRequirements)
  return idea, nil
}

func (s *enrichmentService) scoreIdea(ctx context.Context, userID uuid.UUID, idea *types.Idea) FeasibilityScores {
  ideaCtx := IdeaContext{
    Title:            idea.Title,
    Description:      idea.Description,
    DevelopmentStage: idea.DevelopmentStage,
    AIRefinedPitch:   idea.AIRefinedPitch,
  }
  raw, err := s.generate(ctx, callTypeFeasibility, buildFeasibilityPrompt(ideaCtx), userID, idea.ID)
  if err == nil {
    scores, parseErr := ParseFeasibilityScores(raw)
    if parseErr == nil {
      return scores
    }
    s.log.Warn("feasibility response unparseable, using fallback scoring",
      "idea_id", idea.ID, "error", parseErr)
  } else {
    s.log.Warn("feasibility call failed, using fallback scoring", "idea_id", idea.ID, "error", err)
  }
  return FallbackScore(idea.Title, idea.Description, idea.DevelopmentStage)
}

func insightCacheKey(ideaID uuid.UUID) string {
  return "insight_summary:" + ideaID.String()
}

func (s *enrichmentService) summaryFor(idea *types.Idea, insight *types.IdeaInsight) *InsightSummary {
  return &InsightSummary{
    IdeaID:                idea.ID,
    IdeaTitle:             idea.Title,
    MarketInsights:        insight.MarketInsights,
    RiskAssessment:        insight.RiskAssessment,
    ImplementationRoadmap: insight.ImplementationRoadmap,
    IsAIGenerated:         insight.IsAIGenerated,
    GenerationVersion:     insight.GenerationVersion,
    GeneratedAt:           insight.CreatedAt,
    LastUpdated:           insight.UpdatedAt,
  }
}

// GenerateInsights produces the three insight artifacts. An existing record is
// returned as-is unless forceRegenerate is set; regeneration bumps the
// version and updates the single record in place. The three generations run
// concurrently and each one falls back independently, so generation as a
// whole never fails once the idea is loaded.
func (s *enrichmentService) GenerateInsights(ctx context.Context, userID, ideaID uuid.UUID, forceRegenerate bool) (*InsightSummary, error) {
  idea, err := s.ownedIdea(ctx, userID, ideaID)
  if err != nil {
    return nil, err
  }

  if !forceRegenerate {
    if payload, err := s.cache.Get(ctx, insightCacheKey(ideaID)); err == nil {
      var cached InsightSummary
      if err := json.Unmarshal(payload, &cached); err == nil {
        return &cached, nil
      }
    }
    existing, err := s.insightRepo.GetByIdeaID(ctx, nil, ideaID)
    if err != nil {
      return nil, fmt.Errorf("failed to load insights: %w", err)
    }
    if existing != nil {
      s.log.Info("returning existing insights", "idea_id", ideaID,
        "version", existing.GenerationVersion)
      summary := s.summaryFor(idea, existing)
      s.cacheSummary(ctx, summary)
      return summary, nil
    }
  }

  market, risk, roadmap, fullyAIGenerated := s.generateArtifacts(ctx, userID, idea)

  var saved *types.IdeaInsight
  err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    // Lock the idea row so concurrent regenerations serialize and the
    // version sequence has no gaps or duplicates.
    locked, err := s.ideaRepo.GetByIDForUpdate(ctx, tx, ideaID)
    if err != nil {
      return err
    }
    if locked == nil {
      return ErrIdeaNotFound
    }
    current, err := s.insightRepo.GetByIdeaID(ctx, tx, ideaID)
    if err != nil {
      return err
    }
    if current == nil {
      saved = &types.IdeaInsight{
        ID:                    uuid.New(),
        IdeaID:                ideaID,
        MarketInsights:        market,
        RiskAssessment:        risk,
        ImplementationRoadmap: roadmap,
        IsAIGenerated:         fullyAIGenerated,
        GenerationVersion:     1,
      }
      return s.insightRepo.Create(ctx, tx, saved)
    }
    current.MarketInsights = market
    current.RiskAssessment = risk
    current.ImplementationRoadmap = roadmap
    current.IsAIGenerated = fullyAIGenerated
    current.GenerationVersion++
    saved = current
    return s.insightRepo.Save(ctx, tx, current)
  })
  if err != nil {
    return nil, fmt.Errorf("failed to persist insights: %w", err)
  }

  summary := s.summaryFor(idea, saved)
  s.cacheSummary(ctx, summary)
  s.log.Info("insights generated", "idea_id", ideaID,
    "version", saved.GenerationVersion, "ai_generated", saved.IsAIGenerated)
  return summary, nil
}

// generateArtifacts runs the three insight generations concurrently. Each
// artifact falls back to its deterministic text on failure, so the worker
// functions never return an error. The record only counts as AI generated
// when all three artifacts came from the model.
func (s *enrichmentService) generateArtifacts(ctx context.Context, userID uuid.UUID, idea *types.Idea) (market, risk, roadmap string, fullyAIGenerated bool) {
  ideaCtx := IdeaContext{
    Title:                idea.Title,
    Description:          idea.Description,
    DevelopmentStage:     idea.DevelopmentStage,
    AIRefinedPitch:       idea.AIRefinedPitch,
    MarketPotential:      idea.MarketPotential,
    TechnicalComplexity:  idea.TechnicalComplexity,
    ResourceRequirements: idea.ResourceRequirements,
  }

  var marketOK, riskOK, roadmapOK bool
  g, gctx := errgroup.WithContext(ctx)
  g.Go(func() error {
    market, marketOK = s.artifactOrFallback(gctx, userID, idea.ID, callTypeMarket,
      buildMarketInsightsPrompt(idea.Title, idea.Description, idea.AIRefinedPitch),
      fallbackMarketInsights(idea.Title))
    return nil
  })
  g.Go(func() error {
    risk, riskOK = s.artifactOrFallback(gctx, userID, idea.ID, callTypeRisk,
      buildRiskAssessmentPrompt(ideaCtx),
      fallbackRiskAssessment(idea.Title, idea.DevelopmentStage))
    return nil
  })
  g.Go(func() error {
    roadmap, roadmapOK = s.artifactOrFallback(gctx, userID, idea.ID, callTypeRoadmap,
      buildRoadmapPrompt(ideaCtx),
      fallbackRoadmap(idea.Title))
    return nil
  })
  _ = g.Wait()

  return market, risk, roadmap, marketOK && riskOK && roadmapOK
}

func (s *enrichmentService) artifactOrFallback(ctx context.Context, userID, ideaID uuid.UUID, callType, prompt, fallback string) (string, bool) {
  text, err := s.generate(ctx, callType, prompt, userID, ideaID)
  if err != nil {
    s.log.Warn("artifact generation failed, using fallback",
      "idea_id", ideaID, "call_type", callType, "error", err)
    return fallback, false
  }
  if len(text) < minArtifactLength {
    s.log.Warn("artifact response too short, using fallback",
      "idea_id", ideaID, "call_type", callType, "length", len(text))
    return fallback, false
  }
  return text, true
}

func (s *enrichmentService) cacheSummary(ctx context.Context, summary *InsightSummary) {
  payload, err := json.Marshal(summary)
  if err != nil {
    return
  }
  if err := s.cache.Set(ctx, insightCacheKey(summary.IdeaID), payload); err != nil {
    s.log.Warn("failed to cache insight summary", "idea_id", summary.IdeaID, "error", err)
  }
}

func (s *enrichmentService) GetInsightsHistory(ctx context.Context, userID, ideaID uuid.UUID) (*InsightsHistory, error) {
  if _, err := s.ownedIdea(ctx, userID, ideaID); err != nil {
    return nil, err
  }
  insight, err := s.insightRepo.GetByIdeaID(ctx, nil, ideaID)
  if err != nil {
    return nil, fmt.Errorf("failed to load insights: %w", err)
  }
  if insight == nil {
    return &InsightsHistory{HasInsights: false}, nil
  }
  created := insight.CreatedAt
  updated := insight.UpdatedAt
  return &InsightsHistory{
    HasInsights:    true,
    InsightsCount:  insight.GenerationVersion,
    CurrentVersion: insight.GenerationVersion,
    FirstGenerated: &created,
    LastUpdated:    &updated,
    IsAIGenerated:  insight.IsAIGenerated,
  }, nil
}

func (s *enrichmentService) DeleteInsights(ctx context.Context, userID, ideaID uuid.UUID) error {
  if _, err := s.ownedIdea(ctx, userID, ideaID); err != nil {
    return err
  }
  deleted, err := s.insightRepo.FullDeleteByIdeaID(ctx, nil, ideaID)
  if err != nil {
    return fmt.Errorf("failed to delete insights: %w", err)
  }
  if !deleted {
    return ErrInsightNotFound
  }
  if err := s.cache.Del(ctx, insightCacheKey(ideaID)); err != nil {
    s.log.Warn("failed to invalidate insight cache", "idea_id", ideaID, "error", err)
  }
  s.log.Info("insights deleted", "idea_id", ideaID)
  return nil
}

// OptimizeTitle suggests alternative titles. The idea itself is never
// modified.
func (s *enrichmentService) OptimizeTitle(ctx context.Context, userID, ideaID uuid.UUID) (string, error) {
  idea, err := s.ownedIdea(ctx, userID, ideaID)
  if err != nil {
    return "", err
  }
  text, genErr := s.generate(ctx, callTypeTitle,
    buildTitleOptimizationPrompt(idea.Title, idea.Description), userID, ideaID)
  if genErr != nil {
    s.log.Warn("title optimization failed, using fallback", "idea_id", ideaID, "error", genErr)
    return fallbackTitleOptimization(idea.Title), nil
  }
  return text, nil
}
