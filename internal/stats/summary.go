package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/quantsim/internal/quant"
)

// Summary describes the distribution of terminal prices across an
// ensemble of paths.
type Summary struct {
	Paths  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P05    float64
	Median float64
	P95    float64
}

// Summarize collects the terminal price component of each result.
// Results with no terminal state (aborted paths) are skipped.
func Summarize(results []*quant.Result) Summary {
	terminals := make([]float64, 0, len(results))
	for _, res := range results {
		if res != nil && len(res.Terminal) > 0 {
			terminals = append(terminals, res.Terminal[0])
		}
	}
	if len(terminals) == 0 {
		return Summary{}
	}

	sort.Float64s(terminals)
	return Summary{
		Paths:  len(terminals),
		Mean:   stat.Mean(terminals, nil),
		StdDev: stat.StdDev(terminals, nil),
		Min:    terminals[0],
		Max:    terminals[len(terminals)-1],
		P05:    stat.Quantile(0.05, stat.Empirical, terminals, nil),
		Median: stat.Quantile(0.5, stat.Empirical, terminals, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, terminals, nil),
	}
}
