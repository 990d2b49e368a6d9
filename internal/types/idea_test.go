package types

import (
  "testing"
)

func fptr(v float64) *float64 { return &v }

func TestFeasibilityScore(t *testing.T) {
  cases := []struct {
    name     string
    market   *float64
    tech     *float64
    resource *float64
    want     float64
  }{
    {"strong idea", fptr(9.0), fptr(2.0), fptr(3.0), 8.67},
    {"middling idea", fptr(7.5), fptr(4.5), fptr(6.0), 6.33},
    {"all tens", fptr(10.0), fptr(10.0), fptr(10.0), 4.0},
    {"missing market", nil, fptr(2.0), fptr(3.0), 0.0},
    {"missing technical", fptr(9.0), nil, fptr(3.0), 0.0},
    {"missing resource", fptr(9.0), fptr(2.0), nil, 0.0},
    {"all missing", nil, nil, nil, 0.0},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      idea := Idea{
        MarketPotential:      tc.market,
        TechnicalComplexity:  tc.tech,
        ResourceRequirements: tc.resource,
      }
      if got := idea.FeasibilityScore(); got != tc.want {
        t.Fatalf("FeasibilityScore: want=%v got=%v", tc.want, got)
      }
    })
  }
}

func TestDevelopmentStageValid(t *testing.T) {
  for _, stage := range []DevelopmentStage{StageConcept, StageResearch, StagePrototype, StageTesting, StageLaunch} {
    if !stage.Valid() {
      t.Fatalf("expected %q to be valid", stage)
    }
  }
  for _, stage := range []DevelopmentStage{"", "idea", "Launch", "CONCEPT"} {
    if stage.Valid() {
      t.Fatalf("expected %q to be invalid", stage)
    }
  }
}
