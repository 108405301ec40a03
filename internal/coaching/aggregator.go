package coaching

import (
	"math"
	"time"

	"github.com/velocoach/velocoach/internal/rides"
)

const week = 7 * 24 * time.Hour

// WeeklySummaries rolls the given rides up into exactly weeksBack
// weekly buckets, offset 0 being the week ending now. Weeks without
// rides are zero-filled, never omitted. Only rides that report power
// contribute to the per-week power average.
func (c Config) WeeklySummaries(now time.Time, weeksBack int, windowRides []rides.Ride) []WeeklySummary {
	summaries := make([]WeeklySummary, weeksBack)
	for offset := range summaries {
		summaries[offset].WeekOffset = offset
	}

	powerSums := make([]int, weeksBack)
	powerCounts := make([]int, weeksBack)

	for _, ride := range windowRides {
		offset := int(math.Floor(now.Sub(ride.StartTime).Hours() / week.Hours()))
		if offset < 0 || offset >= weeksBack {
			continue
		}

		summaries[offset].TotalTSS += c.EstimateTSS(ride)
		summaries[offset].Hours += ride.Duration().Hours()
		summaries[offset].RideCount++

		if power, ok := ride.Power(); ok {
			powerSums[offset] += power
			powerCounts[offset]++
		}
	}

	for offset := range summaries {
		if powerCounts[offset] == 0 {
			continue
		}
		avgPower := int(math.Round(float64(powerSums[offset]) / float64(powerCounts[offset])))
		summaries[offset].AvgNormalizedPower = &avgPower
	}

	return summaries
}
