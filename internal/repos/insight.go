package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/idea-incubator/internal/logger"
  "github.com/yungbote/idea-incubator/internal/types"
)

type InsightRepo interface {
  GetByIdeaID(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) (*types.IdeaInsight, error)
  // GetByIdeaIDForUpdate takes a row lock so concurrent regenerations for the
  // same idea serialize. Must be called inside a transaction.
  GetByIdeaIDForUpdate(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) (*types.IdeaInsight, error)
  Create(ctx context.Context, tx *gorm.DB, insight *types.IdeaInsight) error
  Save(ctx context.Context, tx *gorm.DB, insight *types.IdeaInsight) error
  FullDeleteByIdeaID(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) (bool, error)
}

type insightRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewInsightRepo(db *gorm.DB, baseLog *logger.Logger) InsightRepo {
  repoLog := baseLog.With("repo", "InsightRepo")
  return &insightRepo{db: db, log: repoLog}
}

func (r *insightRepo) GetByIdeaID(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) (*types.IdeaInsight, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.IdeaInsight
  err := transaction.WithContext(ctx).
    Where("idea_id = ?", ideaID).
    First(&result).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *insightRepo) GetByIdeaIDForUpdate(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) (*types.IdeaInsight, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  query := transaction.WithContext(ctx)
  // sqlite has no FOR UPDATE; its single-writer lock already serializes.
  if transaction.Dialector.Name() != "sqlite" {
    query = query.Clauses(clause.Locking{Strength: "UPDATE"})
  }
  var result types.IdeaInsight
  err := query.
    Where("idea_id = ?", ideaID).
    First(&result).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *insightRepo) Create(ctx context.Context, tx *gorm.DB, insight *types.IdeaInsight) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Create(insight).Error
}

func (r *insightRepo) Save(ctx context.Context, tx *gorm.DB, insight *types.IdeaInsight) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Save(insight).Error
}

func (r *insightRepo) FullDeleteByIdeaID(ctx context.Context, tx *gorm.DB, ideaID uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  result := transaction.WithContext(ctx).
    Unscoped().
    Where("idea_id = ?", ideaID).
    Delete(&types.IdeaInsight{})
  if result.Error != nil {
    return false, result.Error
  }
  return result.RowsAffected > 0, nil
}
