package recommend

// PercentileRank returns the percentile of value within population: the
// share of members less than or equal to value, scaled to [0,100]. The
// population is expected to contain the value itself, so a single-member
// population ranks at 100. An empty population ranks at a neutral 50.
func PercentileRank(value float64, population []float64) float64 {
	if len(population) == 0 {
		return 50
	}
	count := 0
	for _, p := range population {
		if p <= value {
			count++
		}
	}
	return float64(count) / float64(len(population)) * 100
}
