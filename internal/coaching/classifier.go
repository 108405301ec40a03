package coaching

import (
	"github.com/velocoach/velocoach/internal/rides"
)

// ClassifyRide buckets a ride into an intensity category from the
// ratio of its power (normalized when present, average otherwise) to
// the athlete FTP. Without a usable FTP the intensity is unknowable
// and the ride counts as endurance.
func (c Config) ClassifyRide(ride rides.Ride, ftp int) RideType {
	if ftp <= 0 {
		return RideTypeEndurance
	}

	power, _ := ride.Power()
	intensity := float64(power) / float64(ftp)

	switch {
	case intensity < c.EasyMax:
		return RideTypeEasy
	case intensity < c.EnduranceMax:
		return RideTypeEndurance
	case intensity < c.TempoMax:
		return RideTypeTempo
	case intensity < c.ThresholdMax:
		return RideTypeThreshold
	case intensity < c.VO2MaxMax:
		return RideTypeVO2Max
	default:
		return RideTypeRace
	}
}
