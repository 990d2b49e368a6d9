package types

import (
  "time"
  "gorm.io/gorm"
  "github.com/google/uuid"
)

type IdeaInsight struct {
  gorm.Model
  ID                      uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  IdeaID                  uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null;column:idea_id" json:"idea_id"`
  Idea                    *Idea           `gorm:"constraint:OnDelete:CASCADE;foreignKey:IdeaID;references:ID" json:"-"`
  MarketInsights          string          `gorm:"type:text;column:market_insights" json:"market_insights"`
  RiskAssessment          string          `gorm:"type:text;column:risk_assessment" json:"risk_assessment"`
  ImplementationRoadmap   string          `gorm:"type:text;column:implementation_roadmap" json:"implementation_roadmap"`
  IsAIGenerated           bool            `gorm:"not null;column:is_ai_generated" json:"is_ai_generated"`
  GenerationVersion       int             `gorm:"not null;default:1;column:generation_version" json:"generation_version"`
  CreatedAt               time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt               time.Time       `gorm:"not null" json:"updated_at"`
}

func (IdeaInsight) TableName() string {
  return "idea_insight"
}
