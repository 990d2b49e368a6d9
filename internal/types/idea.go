package types

import (
  "math"
  "time"
  "gorm.io/gorm"
  "github.com/google/uuid"
)

type DevelopmentStage string

const (
  StageConcept    DevelopmentStage = "concept"
  StageResearch   DevelopmentStage = "research"
  StagePrototype  DevelopmentStage = "prototype"
  StageTesting    DevelopmentStage = "testing"
  StageLaunch     DevelopmentStage = "launch"
)

func (s DevelopmentStage) Valid() bool {
  switch s {
  case StageConcept, StageResearch, StagePrototype, StageTesting, StageLaunch:
    return true
  }
  return false
}

type Idea struct {
  gorm.Model
  ID                    uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
  Title                 string              `gorm:"not null;column:title" json:"title"`
  Description           string              `gorm:"type:text;not null;column:description" json:"description"`
  DevelopmentStage      DevelopmentStage    `gorm:"not null;column:development_stage" json:"development_stage"`
  AIValidated           bool                `gorm:"not null;default:false;column:ai_validated" json:"ai_validated"`
  AIRefinedPitch        *string             `gorm:"type:text;column:ai_refined_pitch" json:"ai_refined_pitch,omitempty"`
  MarketPotential       *float64            `gorm:"type:decimal(3,1);column:market_potential" json:"market_potential,omitempty"`
  TechnicalComplexity   *float64            `gorm:"type:decimal(3,1);column:technical_complexity" json:"technical_complexity,omitempty"`
  ResourceRequirements  *float64            `gorm:"type:decimal(3,1);column:resource_requirements" json:"resource_requirements,omitempty"`
  CreatedBy             uuid.UUID           `gorm:"type:uuid;index;not null;column:created_by" json:"created_by"`
  Creator               *User               `gorm:"constraint:OnDelete:CASCADE;foreignKey:CreatedBy;references:ID" json:"-"`
  CreatedAt             time.Time           `gorm:"not null" json:"created_at"`
  UpdatedAt             time.Time           `gorm:"not null" json:"updated_at"`
}

func (Idea) TableName() string {
  return "idea"
}

// FeasibilityScore is a pure function of the current dimension values and is
// never stored. It is 0.0 when any dimension is absent.
func (i *Idea) FeasibilityScore() float64 {
  if i.MarketPotential == nil || i.TechnicalComplexity == nil || i.ResourceRequirements == nil {
    return 0.0
  }
  score := (*i.MarketPotential + (11 - *i.TechnicalComplexity) + (11 - *i.ResourceRequirements)) / 3
  return math.Round(score*100) / 100
}
