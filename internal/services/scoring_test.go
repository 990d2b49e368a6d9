package services

import (
  "testing"
  "github.com/stretchr/testify/require"
  "github.com/yungbote/idea-incubator/internal/types"
)

func TestParseFeasibilityScoresPlainJSON(t *testing.T) {
  raw := `{"market_potential": 7.3, "technical_complexity": 8.7, "resource_requirements": 5.0, "analysis": {"market_reasoning": "x", "technical_reasoning": "y", "resource_reasoning": "z"}}`
  scores, err := ParseFeasibilityScores(raw)
  require.NoError(t, err)
  require.Equal(t, 7.3, scores.MarketPotential)
  require.Equal(t, 8.7, scores.TechnicalComplexity)
  require.Equal(t, 5.0, scores.ResourceRequirements)
}

func TestParseFeasibilityScoresStripsCodeFence(t *testing.T) {
  raw := "```json\n{\"market_potential\": 6.0, \"technical_complexity\": 4.0, \"resource_requirements\": 5.5}\n```"
  scores, err := ParseFeasibilityScores(raw)
  require.NoError(t, err)
  require.Equal(t, 6.0, scores.MarketPotential)

  raw = "```\n{\"market_potential\": 6.0, \"technical_complexity\": 4.0, \"resource_requirements\": 5.5}\n```"
  scores, err = ParseFeasibilityScores(raw)
  require.NoError(t, err)
  require.Equal(t, 5.5, scores.ResourceRequirements)
}

func TestParseFeasibilityScoresClamps(t *testing.T) {
  raw := `{"market_potential": 12.0, "technical_complexity": 0.2, "resource_requirements": -3.0}`
  scores, err := ParseFeasibilityScores(raw)
  require.NoError(t, err)
  require.Equal(t, 10.0, scores.MarketPotential)
  require.Equal(t, 1.0, scores.TechnicalComplexity)
  require.Equal(t, 1.0, scores.ResourceRequirements)
}

func TestParseFeasibilityScoresRejectsBadInput(t *testing.T) {
  _, err := ParseFeasibilityScores("not json at all")
  require.Error(t, err)

  _, err = ParseFeasibilityScores(`{"market_potential": 7.0, "technical_complexity": 5.0}`)
  require.Error(t, err)
}

func TestFallbackScoreStageBaselines(t *testing.T) {
  cases := []struct {
    stage types.DevelopmentStage
    want  FeasibilityScores
  }{
    {types.StageConcept, FeasibilityScores{6.0, 5.5, 6.5}},
    {types.StageResearch, FeasibilityScores{7.0, 6.0, 7.0}},
    {types.StagePrototype, FeasibilityScores{7.5, 4.5, 7.5}},
    {types.StageTesting, FeasibilityScores{8.0, 3.5, 8.0}},
    {types.StageLaunch, FeasibilityScores{8.5, 2.5, 8.5}},
  }
  for _, tc := range cases {
    got := FallbackScore("Community garden sharing", "Neighbors exchange surplus produce locally", tc.stage)
    require.Equal(t, tc.want, got, "stage %s", tc.stage)
  }
}

func TestFallbackScoreKeywordAdjustments(t *testing.T) {
  // Both keyword groups hit: machine learning plus platform.
  got := FallbackScore("Machine Learning Platform", "A platform that automates analysis", types.StageConcept)
  require.Equal(t, FeasibilityScores{7.5, 8.5, 8.5}, got)

  // Software keywords only.
  got = FallbackScore("Mobile budgeting", "A mobile tool for tracking expenses", types.StageConcept)
  require.Equal(t, FeasibilityScores{6.5, 6.5, 7.0}, got)
}

func TestFallbackScoreClampsToTen(t *testing.T) {
  got := FallbackScore("AI mobile app", "artificial intelligence automation for everyone", types.StageLaunch)
  require.Equal(t, 10.0, got.MarketPotential)
  require.Equal(t, 10.0, got.ResourceRequirements)
  require.Equal(t, 5.5, got.TechnicalComplexity)
}

func TestFallbackScoreIsDeterministic(t *testing.T) {
  a := FallbackScore("AI tutor", "An AI tutor for students", types.StageResearch)
  b := FallbackScore("AI tutor", "An AI tutor for students", types.StageResearch)
  require.Equal(t, a, b)
}

func TestFallbackScoreUnknownStageUsesConceptBase(t *testing.T) {
  got := FallbackScore("Community garden sharing", "Neighbors exchange surplus produce", types.DevelopmentStage("unknown"))
  require.Equal(t, FeasibilityScores{6.0, 5.5, 6.5}, got)
}
