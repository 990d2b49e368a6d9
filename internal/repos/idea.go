package repos

import (
  "context"
  "errors"
  "strings"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/idea-incubator/internal/logger"
  "github.com/yungbote/idea-incubator/internal/types"
)

// IdeaFilter narrows List results. Nil fields are not applied.
type IdeaFilter struct {
  Stage       *types.DevelopmentStage
  AIValidated *bool
  Search      string
  Skip        int
  Limit       int
}

type IdeaRepo interface {
  Create(ctx context.Context, tx *gorm.DB, ideas []*types.Idea) ([]*types.Idea, error)
  GetByID(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) (*types.Idea, error)
  // GetByIDForUpdate takes a row lock on the idea so concurrent writers to the
  // same idea serialize. Must be called inside a transaction.
  GetByIDForUpdate(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) (*types.Idea, error)
  List(ctx context.Context, tx *gorm.DB, filter IdeaFilter) ([]*types.Idea, int64, error)
  Save(ctx context.Context, tx *gorm.DB, idea *types.Idea) error
  FullDelete(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) (bool, error)
  Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type ideaRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewIdeaRepo(db *gorm.DB, baseLog *logger.Logger) IdeaRepo {
  repoLog := baseLog.With("repo", "IdeaRepo")
  return &ideaRepo{db: db, log: repoLog}
}

func (r *ideaRepo) Create(ctx context.Context, tx *gorm.DB, ideas []*types.Idea) ([]*types.Idea, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if len(ideas) == 0 {
    return []*types.Idea{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&ideas).Error; err != nil {
    return nil, err
  }
  return ideas, nil
}

func (r *ideaRepo) GetByID(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) (*types.Idea, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.Idea
  err := transaction.WithContext(ctx).
    Where("id = ?", ideaID).
    First(&result).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *ideaRepo) GetByIDForUpdate(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) (*types.Idea, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  query := transaction.WithContext(ctx)
  // sqlite has no FOR UPDATE; its single-writer lock already serializes.
  if transaction.Dialector.Name() != "sqlite" {
    query = query.Clauses(clause.Locking{Strength: "UPDATE"})
  }
  var result types.Idea
  err := query.
    Where("id = ?", ideaID).
    First(&result).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *ideaRepo) List(ctx context.Context, tx *gorm.DB, filter IdeaFilter) ([]*types.Idea, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  query := transaction.WithContext(ctx).Model(&types.Idea{})
  if filter.Stage != nil {
    query = query.Where("development_stage = ?", *filter.Stage)
  }
  if filter.AIValidated != nil {
    query = query.Where("ai_validated = ?", *filter.AIValidated)
  }
  if filter.Search != "" {
    pattern := "%" + strings.ToLower(filter.Search) + "%"
    query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Idea
  if err := query.
    Order("created_at DESC").
    Offset(filter.Skip).
    Limit(filter.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func (r *ideaRepo) Save(ctx context.Context, tx *gorm.DB, idea *types.Idea) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Save(idea).Error
}

func (r *ideaRepo) FullDelete(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  result := transaction.WithContext(ctx).
    Unscoped().
    Where("id = ?", ideaID).
    Delete(&types.Idea{})
  if result.Error != nil {
    return false, result.Error
  }
  return result.RowsAffected > 0, nil
}

func (r *ideaRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var count int64
  if err := transaction.WithContext(ctx).Model(&types.Idea{}).Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
