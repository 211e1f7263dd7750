// Package engine scores and ranks catalog phones against caller priorities.
package engine

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/raifproject/phonefinder/internal/catalog"
)

// FallbackBudgetLabel is the Budget display value used when the first
// surviving candidate carries no usable category.
const FallbackBudgetLabel = "Mid-Range (Fallback)"

// scoreDivisor normalizes the weighted sum. Fixed at 16 (4 features at the
// maximum weight of 4) regardless of how many priorities the caller sent;
// fewer than 4, or repeated features, shift the effective scale. Downstream
// consumers depend on this scale, so it is never recomputed dynamically.
const scoreDivisor = 16.0

type Config struct {
	MaxResults   int
	FallbackLow  float64
	FallbackHigh float64
}

// DefaultConfig returns the stock engine settings: top 3 results, fallback
// band [3.5, 4.5].
func DefaultConfig() Config {
	return Config{MaxResults: 3, FallbackLow: 3.5, FallbackHigh: 4.5}
}

// Recommendation is one formatted result row. JSON names are fixed by the
// frontend contract.
type Recommendation struct {
	Brand           string  `json:"Brand"`
	Model           string  `json:"Model"`
	Budget          string  `json:"Budget"`
	BrandRating     float64 `json:"Brand_Rating"`
	ProcessorRating float64 `json:"Processor_Rating"`
	BatteryRating   float64 `json:"Battery_Rating"`
	CameraRating    float64 `json:"Camera_Rating"`
	TotalScore      float64 `json:"Total_Score"`
}

type Result struct {
	Count   int              `json:"count"`
	Results []Recommendation `json:"results"`

	// Fallback records whether the mid-range heuristic was applied. Not
	// part of the wire contract.
	Fallback bool `json:"-"`
}

// Engine is a stateless scorer over an immutable catalog snapshot.
// Recommend is safe for concurrent use.
type Engine struct {
	store  *catalog.Store
	cfg    Config
	logger *slog.Logger
}

func New(store *catalog.Store, cfg Config, logger *slog.Logger) *Engine {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 3
	}
	return &Engine{store: store, cfg: cfg, logger: logger}
}

// Recommend filters the catalog by budget category, scores the survivors
// against the caller's priorities and returns the top candidates by score.
//
// If no record matches the budget, a secondary filter keeps every record
// whose four ratings all fall in [FallbackLow, FallbackHigh]. An empty
// result after both filters is a valid empty response, not an error.
func (e *Engine) Recommend(budget string, priorities []Priority) (Result, error) {
	normalized := catalog.Normalize(budget)
	records := e.store.Records()

	var candidates []catalog.Record
	for _, rec := range records {
		if catalog.Normalize(rec.Category) == normalized {
			candidates = append(candidates, rec)
		}
	}
	e.logger.Info("filtered catalog", "budget", budget, "candidates", len(candidates))

	fallback := false
	if len(candidates) == 0 {
		e.logger.Warn("no phones for budget, applying mid-range fallback", "budget", budget)
		fallback = true
		for _, rec := range records {
			ok, err := e.inFallbackBand(rec)
			if err != nil {
				return Result{}, err
			}
			if ok {
				candidates = append(candidates, rec)
			}
		}
		e.logger.Info("fallback selected candidates", "candidates", len(candidates))
	}

	if len(candidates) == 0 {
		return Result{Count: 0, Results: []Recommendation{}, Fallback: fallback}, nil
	}

	for i := range candidates {
		var score float64
		for _, p := range priorities {
			raw, ok := rawRating(candidates[i], p.Feature)
			if !ok {
				continue
			}
			v, err := parseRating(candidates[i], p.Feature, raw)
			if err != nil {
				return Result{}, err
			}
			score += v * p.Weight()
		}
		candidates[i].TotalScore = score / scoreDivisor
	}

	// Display quirk kept from the frontend contract: the label decision
	// looks only at the first surviving candidate, in catalog order, and
	// applies to the whole batch.
	labelAsFallback := strings.TrimSpace(candidates[0].Category) == ""

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].TotalScore > candidates[j].TotalScore
	})

	top := candidates
	if len(top) > e.cfg.MaxResults {
		top = top[:e.cfg.MaxResults]
	}

	results := make([]Recommendation, 0, len(top))
	for _, rec := range top {
		rc, err := format(rec, labelAsFallback)
		if err != nil {
			return Result{}, err
		}
		results = append(results, rc)
	}

	return Result{Count: len(results), Results: results, Fallback: fallback}, nil
}

func (e *Engine) inFallbackBand(rec catalog.Record) (bool, error) {
	for _, f := range []string{FeatureBrand, FeatureProcessor, FeatureBattery, FeatureCamera} {
		raw, _ := rawRating(rec, f)
		v, err := parseRating(rec, f, raw)
		if err != nil {
			return false, err
		}
		if v < e.cfg.FallbackLow || v > e.cfg.FallbackHigh {
			return false, nil
		}
	}
	return true, nil
}

func format(rec catalog.Record, labelAsFallback bool) (Recommendation, error) {
	rc := Recommendation{
		Brand:      rec.Brand,
		Model:      rec.Model,
		Budget:     rec.Category,
		TotalScore: rec.TotalScore,
	}
	if labelAsFallback {
		rc.Budget = FallbackBudgetLabel
	}

	for _, f := range []struct {
		feature string
		dst     *float64
	}{
		{FeatureBrand, &rc.BrandRating},
		{FeatureProcessor, &rc.ProcessorRating},
		{FeatureBattery, &rc.BatteryRating},
		{FeatureCamera, &rc.CameraRating},
	} {
		raw, _ := rawRating(rec, f.feature)
		v, err := parseRating(rec, f.feature, raw)
		if err != nil {
			return Recommendation{}, err
		}
		*f.dst = v
	}
	return rc, nil
}

func rawRating(rec catalog.Record, feature string) (string, bool) {
	switch feature {
	case FeatureBrand:
		return rec.BrandRating, true
	case FeatureProcessor:
		return rec.ProcessorRating, true
	case FeatureBattery:
		return rec.BatteryRating, true
	case FeatureCamera:
		return rec.CameraRating, true
	}
	return "", false
}

func parseRating(rec catalog.Record, feature, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &DataError{
			Brand: rec.Brand,
			Model: rec.Model,
			Field: feature + " rating",
			Value: raw,
		}
	}
	return v, nil
}
