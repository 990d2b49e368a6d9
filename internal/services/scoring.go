package services

import (
  "encoding/json"
  "fmt"
  "strings"
  "github.com/yungbote/idea-incubator/internal/types"
)

// FeasibilityScores holds the three scored dimensions, each on a 1.0-10.0
// scale. TechnicalComplexity and ResourceRequirements are inverted scales:
// higher means harder.
type FeasibilityScores struct {
  MarketPotential      float64
  TechnicalComplexity  float64
  ResourceRequirements float64
}

type feasibilityResponse struct {
  MarketPotential      *float64 `json:"market_potential"`
  TechnicalComplexity  *float64 `json:"technical_complexity"`
  ResourceRequirements *float64 `json:"resource_requirements"`
}

// stripCodeFence removes a surrounding markdown code fence, with or without a
// json language tag, so model output wrapped in ``` still parses.
func stripCodeFence(s string) string {
  s = strings.TrimSpace(s)
  if strings.HasPrefix(s, "```json") {
    s = strings.TrimPrefix(s, "```json")
    s = strings.ReplaceAll(s, "```", "")
  } else if strings.HasPrefix(s, "```") {
    s = strings.ReplaceAll(s, "```", "")
  }
  return strings.TrimSpace(s)
}

func clampScore(v float64) float64 {
  if v < 1.0 {
    return 1.0
  }
  if v > 10.0 {
    return 10.0
  }
  return v
}

// ParseFeasibilityScores decodes the model's JSON scoring response. All three
// dimensions must be present; each is clamped to [1.0, 10.0].
func ParseFeasibilityScores(raw string) (FeasibilityScores, error) {
  var parsed feasibilityResponse
  if err := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); err != nil {
    return FeasibilityScores{}, fmt.Errorf("decode feasibility response: %w", err)
  }
  if parsed.MarketPotential == nil || parsed.TechnicalComplexity == nil || parsed.ResourceRequirements == nil {
    return FeasibilityScores{}, fmt.Errorf("feasibility response missing score fields")
  }
  return FeasibilityScores{
    MarketPotential:      clampScore(*parsed.MarketPotential),
    TechnicalComplexity:  clampScore(*parsed.TechnicalComplexity),
    ResourceRequirements: clampScore(*parsed.ResourceRequirements),
  }, nil
}

var fallbackStageScores = map[types.DevelopmentStage]FeasibilityScores{
  types.StageConcept:   {MarketPotential: 6.0, TechnicalComplexity: 5.5, ResourceRequirements: 6.5},
  types.StageResearch:  {MarketPotential: 7.0, TechnicalComplexity: 6.0, ResourceRequirements: 7.0},
  types.StagePrototype: {MarketPotential: 7.5, TechnicalComplexity: 4.5, ResourceRequirements: 7.5},
  types.StageTesting:   {MarketPotential: 8.0, TechnicalComplexity: 3.5, ResourceRequirements: 8.0},
  types.StageLaunch:    {MarketPotential: 8.5, TechnicalComplexity: 2.5, ResourceRequirements: 8.5},
}

var techKeywords = []string{"ai", "artificial intelligence", "machine learning", "automation"}
var softwareKeywords = []string{"mobile", "app", "platform", "software"}

func containsAny(title, description string, keywords []string) bool {
  for _, word := range keywords {
    if strings.Contains(title, word) || strings.Contains(description, word) {
      return true
    }
  }
  return false
}

// FallbackScore produces deterministic scores when the model cannot. Base
// scores come from the development stage, keyword matches in the title or
// description shift them, and the result is clamped to [1.0, 10.0]. It never
// fails.
func FallbackScore(title, description string, stage types.DevelopmentStage) FeasibilityScores {
  scores, ok := fallbackStageScores[stage]
  if !ok {
    scores = fallbackStageScores[types.StageConcept]
  }

  titleLower := strings.ToLower(title)
  descLower := strings.ToLower(description)

  if containsAny(titleLower, descLower, techKeywords) {
    scores.MarketPotential += 1.0
    scores.TechnicalComplexity += 2.0
    scores.ResourceRequirements += 1.5
  }
  if containsAny(titleLower, descLower, softwareKeywords) {
    scores.MarketPotential += 0.5
    scores.TechnicalComplexity += 1.0
    scores.ResourceRequirements += 0.5
  }

  scores.MarketPotential = clampScore(scores.MarketPotential)
  scores.TechnicalComplexity = clampScore(scores.TechnicalComplexity)
  scores.ResourceRequirements = clampScore(scores.ResourceRequirements)
  return scores
}
