package engine

// Feature keys a caller may rank. An unrecognized key contributes zero to
// the score rather than erroring.
const (
	FeatureBrand     = "brand"
	FeatureProcessor = "processor"
	FeatureBattery   = "battery"
	FeatureCamera    = "camera"
)

// Priority is one caller-ranked feature. Lower rank = more important.
type Priority struct {
	Feature string
	Rank    int
}

// Weight converts the rank into its importance multiplier: rank 1 yields
// weight 4, rank 4 yields weight 1. Ranks outside [1,4] pass through
// unvalidated and produce weights outside that range, shifting score
// magnitudes accordingly.
func (p Priority) Weight() float64 {
	return float64(5 - p.Rank)
}
