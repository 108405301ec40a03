package coaching

import (
	"math"

	"github.com/velocoach/velocoach/internal/rides"
)

// FitnessState derives the acute and chronic training load from two
// independent trailing windows of rides, plus their balance.
// Plain trailing averages, not the exponentially weighted variant.
func (c Config) FitnessState(atlRides, ctlRides []rides.Ride) (atl, ctl, tsb int) {
	atl = c.windowedDailyLoad(atlRides, c.ATLDays)
	ctl = c.windowedDailyLoad(ctlRides, c.CTLDays)
	return atl, ctl, ctl - atl
}

func (c Config) windowedDailyLoad(windowRides []rides.Ride, days int) int {
	if days <= 0 {
		return 0
	}
	var sum float64
	for _, ride := range windowRides {
		sum += c.EstimateTSS(ride)
	}
	return int(math.Round(sum / float64(days)))
}
