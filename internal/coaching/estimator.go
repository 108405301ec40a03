package coaching

import (
	"math"

	"github.com/velocoach/velocoach/internal/rides"
)

// EstimateTSS returns the training stress of a single ride. A recorded
// stress score above zero is taken verbatim; otherwise the score is
// estimated from duration and climbing: 50 TSS per hour plus 10 TSS per
// 300m of elevation gain. Rides without a duration count as one hour.
// The result is never negative.
func (c Config) EstimateTSS(ride rides.Ride) float64 {
	if ride.TrainingStressScore != nil && *ride.TrainingStressScore > 0 {
		return *ride.TrainingStressScore
	}

	baseTSS := ride.Duration().Hours() * 50

	var elevationFactor float64
	if ride.ElevationGainM != nil {
		elevationFactor = *ride.ElevationGainM / 300 * 10
	}

	estimated := math.Round(baseTSS + elevationFactor)
	if estimated < 0 {
		return 0
	}
	return estimated
}
