package engine

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/piwi3910/BedMatch/internal/model"
)

// Annotation thresholds.
const (
	highUtilization = 75.0
	lowUtilization  = 40.0
	highWastage     = 50.0
	batchFactor     = 2
)

// Matcher ranks candidate surfaces for a workpiece.
type Matcher struct {
	// Workers is the number of goroutines used to evaluate candidates.
	// Values of 1 or less evaluate sequentially. The output does not depend
	// on this setting.
	Workers int
}

// New returns a Matcher that evaluates candidates on up to workers goroutines.
func New(workers int) *Matcher {
	return &Matcher{Workers: workers}
}

// MatchWorkspace evaluates every candidate sequentially and returns the
// results best first. See Matcher.Match.
func MatchWorkspace(w model.Workpiece, candidates []model.CandidateSurface) ([]model.MatchResult, error) {
	return (&Matcher{}).Match(w, candidates)
}

// Match validates the workpiece, normalizes it to millimeters once, then lays
// out, scores and annotates each candidate. Results are sorted by score,
// highest first; equal scores keep candidate order. A poor fit is never an
// error, only an invalid workpiece is.
func (m *Matcher) Match(w model.Workpiece, candidates []model.CandidateSurface) ([]model.MatchResult, error) {
	if err := ValidateWorkpiece(w); err != nil {
		return nil, err
	}
	wp := w.Normalize()

	results := make([]model.MatchResult, len(candidates))
	workers := m.Workers
	if workers > len(candidates) {
		workers = len(candidates)
	}

	if workers <= 1 {
		for i, c := range candidates {
			results[i] = evaluate(wp, c)
		}
	} else {
		var wg sync.WaitGroup
		next := make(chan int)
		for n := 0; n < workers; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range next {
					results[i] = evaluate(wp, candidates[i])
				}
			}()
		}
		for i := range candidates {
			next <- i
		}
		close(next)
		wg.Wait()
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results, nil
}

// evaluate produces the scored and annotated result for one candidate.
func evaluate(w model.Workpiece, s model.CandidateSurface) model.MatchResult {
	layout := CalculateLayout(w, s)
	breakdown := ScoreLayout(layout, w.Quantity)
	score := MatchScore(breakdown)

	return model.MatchResult{
		Surface:         s,
		Layout:          layout,
		MatchScore:      score,
		IsOptimal:       IsOptimal(score, layout, w.Quantity),
		Breakdown:       breakdown,
		Recommendations: recommendations(layout, w.Quantity),
		Warnings:        warnings(layout, w.Quantity),
	}
}

func recommendations(l model.Layout, qty int) []string {
	recs := []string{}
	if l.TotalParts >= qty {
		recs = append(recs, fmt.Sprintf("Fits all %d parts on a single sheet", qty))
		if spare := l.TotalParts - qty; spare > 0 {
			recs = append(recs, fmt.Sprintf("%d spare positions available on each sheet", spare))
		}
	}
	if l.UtilizationPercent >= highUtilization {
		recs = append(recs, fmt.Sprintf("Excellent material utilization (%.1f%%)", l.UtilizationPercent))
	}
	if l.TotalParts >= batchFactor*qty {
		recs = append(recs, fmt.Sprintf("Batch opportunity: %d full orders per sheet", l.TotalParts/qty))
	}
	if l.Rotated && l.TotalParts > 0 {
		recs = append(recs, "Rotating parts 90° gives the best layout")
	}
	return recs
}

func warnings(l model.Layout, qty int) []string {
	warns := []string{}
	switch {
	case l.TotalParts == 0:
		warns = append(warns, "Workpiece does not fit on this surface")
	case l.TotalParts < qty:
		sheets := int(math.Ceil(float64(qty) / float64(l.TotalParts)))
		warns = append(warns, fmt.Sprintf("Requires %d sheets to produce %d parts (%d per sheet)", sheets, qty, l.TotalParts))
	}
	if l.UtilizationPercent < lowUtilization {
		warns = append(warns, fmt.Sprintf("Low material utilization (%.1f%%)", l.UtilizationPercent))
	}
	if l.WastagePercent > highWastage {
		warns = append(warns, fmt.Sprintf("High material wastage (%.1f%%)", l.WastagePercent))
	}
	return warns
}
