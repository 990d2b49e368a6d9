package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/idea-incubator/internal/logger"
  "github.com/yungbote/idea-incubator/internal/normalization"
  "github.com/yungbote/idea-incubator/internal/repos"
  "github.com/yungbote/idea-incubator/internal/types"
)

// IdeaUpdate carries a partial update. Nil fields are left untouched.
type IdeaUpdate struct {
  Title                *string
  Description          *string
  DevelopmentStage     *types.DevelopmentStage
  MarketPotential      *float64
  TechnicalComplexity  *float64
  ResourceRequirements *float64
}

// IdeaPage is one page of a filtered listing.
type IdeaPage struct {
  Items   []*types.Idea `json:"items"`
  Total   int64         `json:"total"`
  Skip    int           `json:"skip"`
  Limit   int           `json:"limit"`
  HasNext bool          `json:"has_next"`
}

type IdeaService interface {
  CreateIdea(ctx context.Context, userID uuid.UUID, idea *types.Idea) (*types.Idea, error)
  ListIdeas(ctx context.Context, filter repos.IdeaFilter) (*IdeaPage, error)
  GetIdea(ctx context.Context, ideaID uuid.UUID) (*types.Idea, error)
  UpdateIdea(ctx context.Context, userID, ideaID uuid.UUID, update IdeaUpdate) (*types.Idea, error)
  DeleteIdea(ctx context.Context, userID, ideaID uuid.UUID) error
}

type ideaService struct {
  db          *gorm.DB
  ideaRepo    repos.IdeaRepo
  insightRepo repos.InsightRepo
  log         *logger.Logger
}

func NewIdeaService(db *gorm.DB, ideaRepo repos.IdeaRepo, insightRepo repos.InsightRepo, baseLog *logger.Logger) IdeaService {
  serviceLog := baseLog.With("service", "IdeaService")
  return &ideaService{
    db:          db,
    ideaRepo:    ideaRepo,
    insightRepo: insightRepo,
    log:         serviceLog,
  }
}

func (is *ideaService) CreateIdea(ctx context.Context, userID uuid.UUID, idea *types.Idea) (*types.Idea, error) {
  idea.Title = normalization.TrimInputString(idea.Title)
  idea.Description = normalization.TrimInputString(idea.Description)
  if !idea.DevelopmentStage.Valid() {
    return nil, fmt.Errorf("Invalid development stage: %s", idea.DevelopmentStage)
  }
  idea.ID = uuid.New()
  idea.CreatedBy = userID
  idea.AIValidated = false
  defaultScore := 5.0
  if idea.MarketPotential == nil {
    idea.MarketPotential = &defaultScore
  }
  if idea.TechnicalComplexity == nil {
    idea.TechnicalComplexity = &defaultScore
  }
  if idea.ResourceRequirements == nil {
    idea.ResourceRequirements = &defaultScore
  }
  created, err := is.ideaRepo.Create(ctx, nil, []*types.Idea{idea})
  if err != nil {
    return nil, fmt.Errorf("Failed to create idea: %w", err)
  }
  is.log.Info("idea created", "idea_id", idea.ID, "title", idea.Title, "created_by", userID)
  return created[0], nil
}

func (is *ideaService) ListIdeas(ctx context.Context, filter repos.IdeaFilter) (*IdeaPage, error) {
  if filter.Limit <= 0 {
    filter.Limit = 10
  }
  if filter.Limit > 100 {
    filter.Limit = 100
  }
  if filter.Skip < 0 {
    filter.Skip = 0
  }
  items, total, err := is.ideaRepo.List(ctx, nil, filter)
  if err != nil {
    return nil, fmt.Errorf("Failed to list ideas: %w", err)
  }
  if items == nil {
    items = []*types.Idea{}
  }
  return &IdeaPage{
    Items:   items,
    Total:   total,
    Skip:    filter.Skip,
    Limit:   filter.Limit,
    HasNext: int64(filter.Skip+filter.Limit) < total,
  }, nil
}

func (is *ideaService) GetIdea(ctx context.Context, ideaID uuid.UUID) (*types.Idea, error) {
  idea, err := is.ideaRepo.GetByID(ctx, nil, ideaID)
  if err != nil {
    return nil, fmt.Errorf("Failed to load idea: %w", err)
  }
  if idea == nil {
    return nil, ErrIdeaNotFound
  }
  return idea, nil
}

func (is *ideaService) UpdateIdea(ctx context.Context, userID, ideaID uuid.UUID, update IdeaUpdate) (*types.Idea, error) {
  idea, err := is.ideaRepo.GetByID(ctx, nil, ideaID)
  if err != nil {
    return nil, fmt.Errorf("Failed to load idea: %w", err)
  }
  if idea == nil {
    return nil, ErrIdeaNotFound
  }
  if idea.CreatedBy != userID {
    return nil, ErrNotOwner
  }
  if update.Title != nil {
    idea.Title = normalization.TrimInputString(*update.Title)
  }
  if update.Description != nil {
    idea.Description = normalization.TrimInputString(*update.Description)
  }
  if update.DevelopmentStage != nil {
    if !update.DevelopmentStage.Valid() {
      return nil, fmt.Errorf("Invalid development stage: %s", *update.DevelopmentStage)
    }
    idea.DevelopmentStage = *update.DevelopmentStage
  }
  if update.MarketPotential != nil {
    idea.MarketPotential = update.MarketPotential
  }
  if update.TechnicalComplexity != nil {
    idea.TechnicalComplexity = update.TechnicalComplexity
  }
  if update.ResourceRequirements != nil {
    idea.ResourceRequirements = update.ResourceRequirements
  }
  if err := is.ideaRepo.Save(ctx, nil, idea); err != nil {
    return nil, fmt.Errorf("Failed to save idea: %w", err)
  }
  is.log.Info("idea updated", "idea_id", ideaID)
  return idea, nil
}

func (is *ideaService) DeleteIdea(ctx context.Context, userID, ideaID uuid.UUID) error {
  idea, err := is.ideaRepo.GetByID(ctx, nil, ideaID)
  if err != nil {
    return fmt.Errorf("Failed to load idea: %w", err)
  }
  if idea == nil {
    return ErrIdeaNotFound
  }
  if idea.CreatedBy != userID {
    return ErrNotOwner
  }
  err = is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, dErr := is.insightRepo.FullDeleteByIdeaID(ctx, tx, ideaID); dErr != nil {
      return fmt.Errorf("Failed to delete idea insights: %w", dErr)
    }
    deleted, dErr := is.ideaRepo.FullDelete(ctx, tx, ideaID)
    if dErr != nil {
      return fmt.Errorf("Failed to delete idea: %w", dErr)
    }
    if !deleted {
      return ErrIdeaNotFound
    }
    return nil
  })
  if err != nil {
    return err
  }
  is.log.Info("idea deleted", "idea_id", ideaID)
  return nil
}
