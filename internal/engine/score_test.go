package engine

import (
	"math/rand"
	"testing"

	"github.com/piwi3910/BedMatch/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestScoreLayout_ScenarioA(t *testing.T) {
	l := CalculateLayout(scenarioA(), surface("Router", 1300, 900))
	b := ScoreLayout(l, 10)

	assert.InDelta(t, 30.768, b.Utilization, 1e-9)
	assert.InDelta(t, 15.0, b.QuantityCoverage, 1e-9)
	assert.InDelta(t, 18.46, b.Wastage, 1e-9)
	assert.Equal(t, 64, MatchScore(b))
	assert.False(t, IsOptimal(MatchScore(b), l, 10))
}

func TestScoreLayout_Components(t *testing.T) {
	tests := []struct {
		name     string
		layout   model.Layout
		qty      int
		coverage float64
		total    int
	}{
		{
			name:     "partial coverage is capped at half",
			layout:   model.Layout{TotalParts: 5, UtilizationPercent: 50, WastagePercent: 50},
			qty:      8,
			coverage: 9.375,
			total:    34,
		},
		{
			name:     "small spare buffer is free",
			layout:   model.Layout{TotalParts: 12, UtilizationPercent: 80, WastagePercent: 20},
			qty:      10,
			coverage: 30,
			total:    82,
		},
		{
			name:     "excess at tolerance is penalized",
			layout:   model.Layout{TotalParts: 13, UtilizationPercent: 80, WastagePercent: 20},
			qty:      10,
			coverage: 24,
			total:    76,
		},
		{
			name:     "large excess floors at fifteen",
			layout:   model.Layout{TotalParts: 100, UtilizationPercent: 80, WastagePercent: 20},
			qty:      10,
			coverage: 15,
			total:    67,
		},
		{
			name:     "zero fit",
			layout:   model.Layout{TotalParts: 0, UtilizationPercent: 0, WastagePercent: 100},
			qty:      1,
			coverage: 0,
			total:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ScoreLayout(tt.layout, tt.qty)
			assert.InDelta(t, tt.coverage, b.QuantityCoverage, 1e-9)
			assert.Equal(t, tt.total, MatchScore(b))
		})
	}
}

func TestScoreLayout_UtilizationCapped(t *testing.T) {
	b := ScoreLayout(model.Layout{TotalParts: 1, UtilizationPercent: 100, WastagePercent: 0}, 1)
	assert.Equal(t, 40.0, b.Utilization)
	assert.Equal(t, 30.0, b.Wastage)
	assert.Equal(t, 100, MatchScore(b))
}

func TestMatchScore_Clamped(t *testing.T) {
	assert.Equal(t, 100, MatchScore(model.ScoreBreakdown{Utilization: 60, QuantityCoverage: 60}))
	assert.Equal(t, 0, MatchScore(model.ScoreBreakdown{Utilization: -5}))
}

func TestIsOptimal(t *testing.T) {
	good := model.Layout{TotalParts: 10, UtilizationPercent: 93.96}
	assert.True(t, IsOptimal(95, good, 10))
	assert.False(t, IsOptimal(69, good, 10), "score below threshold")
	assert.False(t, IsOptimal(95, good, 11), "single sheet short of the order")

	lowUse := model.Layout{TotalParts: 10, UtilizationPercent: 59.99}
	assert.False(t, IsOptimal(90, lowUse, 10), "utilization below threshold")
}

func TestCoverage_MonotonicOnceCapacityIsReached(t *testing.T) {
	// Past the sheet capacity every extra part required lowers coverage.
	for _, capacity := range []int{1, 7, 30, 250} {
		prev := coveragePoints(capacity, capacity)
		for qty := capacity + 1; qty <= capacity*4+10; qty++ {
			cur := coveragePoints(capacity, qty)
			assert.LessOrEqual(t, cur, prev, "capacity %d qty %d", capacity, qty)
			prev = cur
		}
	}
}

func TestScore_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		w := randomWorkpiece(rng)
		w.RotationAllowed = rng.Intn(2) == 0
		l := CalculateLayout(w, randomSurface(rng))
		score := MatchScore(ScoreLayout(l, w.Quantity))
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}
