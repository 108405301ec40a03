package coaching

import (
	"time"
)

type RideType string

const (
	RideTypeEasy      RideType = "easy"
	RideTypeEndurance RideType = "endurance"
	RideTypeTempo     RideType = "tempo"
	RideTypeThreshold RideType = "threshold"
	RideTypeVO2Max    RideType = "vo2max"
	RideTypeRace      RideType = "race"
)

type Trend string

const (
	TrendBuilding    Trend = "building"
	TrendMaintaining Trend = "maintaining"
	TrendRecovering  Trend = "recovering"
	TrendDeclining   Trend = "declining"

	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
)

// Snapshot is the full derived coaching context for one athlete, built
// fresh per request and handed to the planning / recommendation side.
type Snapshot struct {
	GeneratedAt time.Time       `json:"generatedAt"`
	Today       string          `json:"today"`
	DayOfWeek   string          `json:"dayOfWeek"`
	Profile     ProfileInfo     `json:"profile"`
	Load        LoadInfo        `json:"load"`
	Performance PerformanceInfo `json:"performance"`
	Patterns    PatternsInfo    `json:"patterns"`
	RecentRides []RecentRide    `json:"recentRides"`
}

type ProfileInfo struct {
	FTP               int     `json:"ftp"`
	RestingHeartRate  *int    `json:"restingHr"`
	MaxHeartRate      *int    `json:"maxHr"`
	WeeklyHoursTarget float64 `json:"weeklyHoursTarget"`
	Goal              *string `json:"goal"`
}

type LoadInfo struct {
	WeeklySummaries []WeeklySummary `json:"weeklySummaries"`
	CTL             int             `json:"ctl"`
	ATL             int             `json:"atl"`
	TSB             int             `json:"tsb"`
	LoadTrend       Trend           `json:"loadTrend"`
}

// WeeklySummary is the rollup of one 7-day window.
// Offset 0 is the current week, higher offsets reach further back.
type WeeklySummary struct {
	WeekOffset         int     `json:"weekOffset"`
	TotalTSS           float64 `json:"totalTss"`
	Hours              float64 `json:"hours"`
	RideCount          int     `json:"rideCount"`
	AvgNormalizedPower *int    `json:"avgNormalizedPower"`
}

type PerformanceInfo struct {
	AvgWeightedPower *int  `json:"avgWeightedPower"`
	Best20MinPower   *int  `json:"best20MinPower"`
	PowerTrend       Trend `json:"powerTrend"`
}

type PatternsInfo struct {
	AvgRidesPerWeek   float64  `json:"avgRidesPerWeek"`
	AvgRideDuration   float64  `json:"avgRideDuration"`
	PreferredDays     []string `json:"preferredDays"`
	DaysSinceLastRide int      `json:"daysSinceLastRide"`
	DaysSinceRestDay  int      `json:"daysSinceRestDay"`
	ConsistencyScore  int      `json:"consistencyScore"`
}

type RecentRide struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	TSS             float64  `json:"tss"`
	Type            RideType `json:"type"`
	Title           string   `json:"title"`
}
