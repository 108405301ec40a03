package coaching

// Config carries the defaults, window lengths and classification
// thresholds used when building a context snapshot. Values live here
// instead of as literals so tests can override them independently.
type Config struct {
	DefaultFTP               int
	DefaultWeeklyHoursTarget float64

	// windows
	WeeksBack      int
	MaxWeeksBack   int
	RecentRides    int
	MaxRecentRides int
	ATLDays        int
	CTLDays        int
	PatternWeeks   int
	RestScanDays   int

	NoRidesSentinelDays          int
	BestEffortMinDurationSeconds int

	// ride intensity bins, each upper-exclusive, as a ratio of FTP
	EasyMax      float64
	EnduranceMax float64
	TempoMax     float64
	ThresholdMax float64
	VO2MaxMax    float64

	// load trend thresholds, relative change of recent vs prior weeks
	LoadBuildingMin   float64
	LoadDecliningMax  float64
	LoadRecoveringMax float64

	// power trend threshold, relative change in either direction
	PowerTrendDelta float64

	MaxConsistencyRatio     float64
	NeutralConsistencyScore int
}

func DefaultConfig() Config {
	return Config{
		DefaultFTP:               250,
		DefaultWeeklyHoursTarget: 8,

		WeeksBack:      6,
		MaxWeeksBack:   52,
		RecentRides:    5,
		MaxRecentRides: 20,
		ATLDays:        7,
		CTLDays:        42,
		PatternWeeks:   12,
		RestScanDays:   14,

		NoRidesSentinelDays:          999,
		BestEffortMinDurationSeconds: 1200,

		EasyMax:      0.55,
		EnduranceMax: 0.75,
		TempoMax:     0.87,
		ThresholdMax: 0.95,
		VO2MaxMax:    1.05,

		LoadBuildingMin:   0.15,
		LoadDecliningMax:  -0.30,
		LoadRecoveringMax: -0.15,

		PowerTrendDelta: 0.05,

		MaxConsistencyRatio:     1.5,
		NeutralConsistencyScore: 50,
	}
}
