package engine

import (
	"fmt"

	"github.com/piwi3910/BedMatch/internal/model"
)

// ComparisonScenario defines a named workpiece variant to compare.
type ComparisonScenario struct {
	Name      string
	Workpiece model.Workpiece
}

// ComparisonResult holds the ranked matches and summary figures for a single
// scenario.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Results      []model.MatchResult
	Best         *model.MatchResult // nil when there are no candidates
	OptimalCount int
	AverageScore float64
}

// CompareScenarios runs the matcher for each scenario against the same
// candidates and returns the results in scenario order. This enables
// side-by-side comparison of packing constraints such as rotation or margin.
func (m *Matcher) CompareScenarios(scenarios []ComparisonScenario, candidates []model.CandidateSurface) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		matches, err := m.Match(scenario.Workpiece, candidates)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}

		cr := ComparisonResult{Scenario: scenario, Results: matches}
		total := 0
		for _, r := range matches {
			total += r.MatchScore
			if r.IsOptimal {
				cr.OptimalCount++
			}
		}
		if len(matches) > 0 {
			best := matches[0]
			cr.Best = &best
			cr.AverageScore = float64(total) / float64(len(matches))
		}
		results = append(results, cr)
	}

	return results, nil
}

// BuildDefaultScenarios generates a set of comparison scenarios based on the
// given workpiece, varying the packing constraints to show what-if alternatives.
func BuildDefaultScenarios(base model.Workpiece) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:      "Current Settings",
			Workpiece: base,
		},
	}

	// Scenario: the other rotation setting
	toggled := base
	toggled.RotationAllowed = !base.RotationAllowed
	name := "Rotation Allowed"
	if base.RotationAllowed {
		name = "No Rotation"
	}
	scenarios = append(scenarios, ComparisonScenario{Name: name, Workpiece: toggled})

	// Scenario: no spacing between parts
	if base.Margin > 0 {
		noMargin := base
		noMargin.Margin = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name:      "No Margin",
			Workpiece: noMargin,
		})
	}

	// Scenario: half the spacing
	if base.Margin > 1 {
		half := base
		half.Margin = base.Margin * 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:      fmt.Sprintf("Margin %.1f%s (half)", half.Margin, base.Unit.Symbol()),
			Workpiece: half,
		})
	}

	return scenarios
}
