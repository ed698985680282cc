package engine

import (
	"testing"

	"github.com/piwi3910/BedMatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultScenarios(t *testing.T) {
	scenarios := BuildDefaultScenarios(scenarioA())
	require.Len(t, scenarios, 4)
	assert.Equal(t, "Current Settings", scenarios[0].Name)
	assert.Equal(t, "Rotation Allowed", scenarios[1].Name)
	assert.True(t, scenarios[1].Workpiece.RotationAllowed)
	assert.Equal(t, "No Margin", scenarios[2].Name)
	assert.Equal(t, 0.0, scenarios[2].Workpiece.Margin)
	assert.Equal(t, "Margin 2.5mm (half)", scenarios[3].Name)
	assert.Equal(t, 2.5, scenarios[3].Workpiece.Margin)
}

func TestBuildDefaultScenarios_NoMargin(t *testing.T) {
	w := scenarioA()
	w.Margin = 0
	w.RotationAllowed = true
	scenarios := BuildDefaultScenarios(w)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "No Rotation", scenarios[1].Name)
	assert.False(t, scenarios[1].Workpiece.RotationAllowed)
}

func TestCompareScenarios(t *testing.T) {
	candidates := []model.CandidateSurface{surface("Router", 1300, 900)}
	results, err := New(1).CompareScenarios(BuildDefaultScenarios(scenarioA()), candidates)
	require.NoError(t, err)
	require.Len(t, results, 4)

	current := results[0]
	require.NotNil(t, current.Best)
	assert.Equal(t, 64, current.Best.MatchScore)
	assert.Equal(t, 0, current.OptimalCount)
	assert.Equal(t, 64.0, current.AverageScore)

	rotated := results[1]
	assert.Equal(t, 69, rotated.Best.MatchScore)
	assert.True(t, rotated.Best.Layout.Rotated)

	noMargin := results[2]
	assert.Equal(t, 36, noMargin.Best.Layout.TotalParts)
	assert.Equal(t, 78, noMargin.Best.MatchScore)
	assert.Equal(t, 1, noMargin.OptimalCount)
}

func TestCompareScenarios_NoCandidates(t *testing.T) {
	results, err := New(1).CompareScenarios(BuildDefaultScenarios(scenarioA()), nil)
	require.NoError(t, err)
	for _, r := range results {
		assert.Nil(t, r.Best)
		assert.Equal(t, 0.0, r.AverageScore)
	}
}

func TestCompareScenarios_InvalidScenario(t *testing.T) {
	bad := scenarioA()
	bad.Quantity = 0
	_, err := New(1).CompareScenarios([]ComparisonScenario{{Name: "Broken", Workpiece: bad}}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Broken")
}
