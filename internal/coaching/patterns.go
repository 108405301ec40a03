package coaching

import (
	"math"
	"sort"
	"time"

	"github.com/velocoach/velocoach/internal/rides"
)

const dateLayout = "2006-01-02"

// PreferredDays returns the two weekdays the athlete rides most,
// ranked by ride count. Ties resolve in week order so the result is
// stable across calls.
func (c Config) PreferredDays(patternRides []rides.Ride) []string {
	countPerWeekday := make(map[time.Weekday]int)
	for _, ride := range patternRides {
		countPerWeekday[ride.StartTime.Weekday()]++
	}

	weekdays := make([]time.Weekday, 0, len(countPerWeekday))
	for weekday := range countPerWeekday {
		weekdays = append(weekdays, weekday)
	}
	sort.Slice(weekdays, func(i, j int) bool {
		if countPerWeekday[weekdays[i]] != countPerWeekday[weekdays[j]] {
			return countPerWeekday[weekdays[i]] > countPerWeekday[weekdays[j]]
		}
		return weekdays[i] < weekdays[j]
	})

	preferredDays := make([]string, 0, 2)
	for _, weekday := range weekdays {
		if len(preferredDays) == 2 {
			break
		}
		preferredDays = append(preferredDays, weekday.String())
	}
	return preferredDays
}

// ConsistencyScore grades how closely the weekly hours track the
// athlete's target. Overshooting the target is penalized the same way
// undershooting is, folding ratios above 1 back down. Weeks without
// riding do not count; with nothing to grade the score is neutral.
func (c Config) ConsistencyScore(weeks []WeeklySummary, targetHoursPerWeek float64) int {
	if targetHoursPerWeek <= 0 {
		return c.NeutralConsistencyScore
	}

	var sum float64
	var count int
	for _, summary := range weeks {
		if summary.Hours <= 0 {
			continue
		}
		ratio := math.Min(summary.Hours/targetHoursPerWeek, c.MaxConsistencyRatio)
		weekScore := ratio * 100
		if ratio > 1 {
			weekScore = (2 - ratio) * 100
		}
		weekScore = math.Max(0, math.Min(100, weekScore))
		sum += weekScore
		count++
	}

	if count == 0 {
		return c.NeutralConsistencyScore
	}
	return int(math.Round(sum / float64(count)))
}

// DaysSinceLastRide returns whole days since the most recent ride, or
// the sentinel value when the athlete has no rides at all.
func (c Config) DaysSinceLastRide(now time.Time, patternRides []rides.Ride) int {
	if len(patternRides) == 0 {
		return c.NoRidesSentinelDays
	}

	mostRecent := patternRides[0].StartTime
	for _, ride := range patternRides[1:] {
		if ride.StartTime.After(mostRecent) {
			mostRecent = ride.StartTime
		}
	}

	days := int(math.Floor(now.Sub(mostRecent).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// TrainingStreakDays counts the current unbroken run of calendar days
// with at least one ride, scanning backward from today and giving up
// after RestScanDays. This is the streak length, not the literal
// distance to the last rest day.
func (c Config) TrainingStreakDays(now time.Time, patternRides []rides.Ride) int {
	rideDays := make(map[string]bool, len(patternRides))
	for _, ride := range patternRides {
		rideDays[ride.StartTime.Format(dateLayout)] = true
	}

	streak := 0
	for dayOffset := 0; dayOffset < c.RestScanDays; dayOffset++ {
		day := now.AddDate(0, 0, -dayOffset).Format(dateLayout)
		if !rideDays[day] {
			break
		}
		streak++
	}
	return streak
}
