package rides

import (
	"time"
)

// Ride is a single recorded cycling activity. Power and stress fields
// are nil when the head unit (or the upload) did not report them.
type Ride struct {
	ID                  int       `json:"id"`
	AthleteID           int       `json:"athleteId"`
	StartTime           time.Time `json:"startTime"`
	Title               string    `json:"title"`
	DurationSeconds     *int      `json:"durationSeconds,omitempty"`
	DistanceKm          *float64  `json:"distanceKm,omitempty"`
	ElevationGainM      *float64  `json:"elevationGainM,omitempty"`
	AveragePower        *int      `json:"averagePower,omitempty"`
	NormalizedPower     *int      `json:"normalizedPower,omitempty"`
	AverageHeartRate    *int      `json:"averageHeartRate,omitempty"`
	TrainingStressScore *float64  `json:"trainingStressScore,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Duration returns the recorded ride duration,
// or the one hour fallback when the ride has none.
func (r *Ride) Duration() time.Duration {
	if r.DurationSeconds == nil {
		return time.Hour
	}
	return time.Duration(*r.DurationSeconds) * time.Second
}

// Power returns the best available power figure for the ride:
// normalized power when present, average power otherwise.
// The second return value is false when the ride reports no power at all.
func (r *Ride) Power() (int, bool) {
	if r.NormalizedPower != nil {
		return *r.NormalizedPower, true
	}
	if r.AveragePower != nil {
		return *r.AveragePower, true
	}
	return 0, false
}
