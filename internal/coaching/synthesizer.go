package coaching

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/velocoach/velocoach/internal/athlete"
	"github.com/velocoach/velocoach/internal/rides"
	"github.com/velocoach/velocoach/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=coaching_mocks_test.go -package=coaching_test

type ridesRepo interface {
	ListAll(ctx context.Context, params rides.RideParams) ([]rides.Ride, error)
}

type profilesRepo interface {
	Get(ctx context.Context, athleteID int) (*athlete.Profile, error)
}

// Analyzer builds context snapshots from the ride history and the
// athlete profile. It holds no state between invocations; the snapshot
// is fully determined by repository contents and the capture time.
type Analyzer struct {
	cfg      Config
	rides    ridesRepo
	profiles profilesRepo

	// wall clock, swapped out in tests
	nowFn func() time.Time
}

func NewAnalyzer(cfg Config, ridesRepo ridesRepo, profilesRepo profilesRepo) *Analyzer {
	return &Analyzer{
		cfg:      cfg,
		rides:    ridesRepo,
		profiles: profilesRepo,
		nowFn:    time.Now,
	}
}

// WithNow overrides the clock used to capture the snapshot time.
func (a *Analyzer) WithNow(nowFn func() time.Time) *Analyzer {
	a.nowFn = nowFn
	return a
}

type ContextParams struct {
	WeeksBack   int
	RecentRides int
}

func (a *Analyzer) normalize(params ContextParams) ContextParams {
	if params.WeeksBack <= 0 {
		params.WeeksBack = a.cfg.WeeksBack
	}
	if params.WeeksBack > a.cfg.MaxWeeksBack {
		params.WeeksBack = a.cfg.MaxWeeksBack
	}
	if params.RecentRides < 0 {
		params.RecentRides = a.cfg.RecentRides
	}
	if params.RecentRides > a.cfg.MaxRecentRides {
		params.RecentRides = a.cfg.MaxRecentRides
	}
	return params
}

// TrainingContext assembles the coaching context snapshot for one
// athlete. The six independent ride aggregations are issued
// concurrently and joined before synthesis; if any of them fails the
// whole invocation fails rather than producing a partial snapshot.
func (a *Analyzer) TrainingContext(
	ctx context.Context,
	athleteID int,
	params ContextParams,
) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coaching.analyzer.trainingContext")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", athleteID))

	params = a.normalize(params)
	span.SetAttributes(attribute.Int("weeks_back", params.WeeksBack))
	span.SetAttributes(attribute.Int("recent_rides", params.RecentRides))

	// captured once, threaded through every sub-computation
	now := a.nowFn()

	profile, err := a.athleteProfile(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("get athlete profile: %w", err)
	}

	windowStart := now.AddDate(0, 0, -params.WeeksBack*7)
	atlStart := now.AddDate(0, 0, -a.cfg.ATLDays)
	ctlStart := now.AddDate(0, 0, -a.cfg.CTLDays)
	patternStart := now.AddDate(0, 0, -a.cfg.PatternWeeks*7)

	var (
		windowRides     []rides.Ride
		atlRides        []rides.Ride
		ctlRides        []rides.Ride
		recentRidesList []rides.Ride
		patternRides    []rides.Ride
		bestEffortRides []rides.Ride
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		windowRides, err = a.rides.ListAll(groupCtx, rides.RideParams{
			AthleteID: athleteID, From: &windowStart, To: &now,
		})
		return err
	})
	group.Go(func() (err error) {
		atlRides, err = a.rides.ListAll(groupCtx, rides.RideParams{
			AthleteID: athleteID, From: &atlStart, To: &now,
		})
		return err
	})
	group.Go(func() (err error) {
		ctlRides, err = a.rides.ListAll(groupCtx, rides.RideParams{
			AthleteID: athleteID, From: &ctlStart, To: &now,
		})
		return err
	})
	group.Go(func() (err error) {
		if params.RecentRides == 0 {
			return nil
		}
		recentRidesList, err = a.rides.ListAll(groupCtx, rides.RideParams{
			AthleteID: athleteID, Limit: params.RecentRides,
		})
		return err
	})
	group.Go(func() (err error) {
		patternRides, err = a.rides.ListAll(groupCtx, rides.RideParams{
			AthleteID: athleteID, From: &patternStart, To: &now,
		})
		return err
	})
	group.Go(func() (err error) {
		bestEffortRides, err = a.rides.ListAll(groupCtx, rides.RideParams{
			AthleteID:          athleteID,
			From:               &windowStart,
			To:                 &now,
			MinDurationSeconds: a.cfg.BestEffortMinDurationSeconds,
		})
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("ride aggregation: %w", err)
	}

	summaries := a.cfg.WeeklySummaries(now, params.WeeksBack, windowRides)
	atl, ctl, tsb := a.cfg.FitnessState(atlRides, ctlRides)

	var totalRides int
	var totalHours float64
	for _, summary := range summaries {
		totalRides += summary.RideCount
		totalHours += summary.Hours
	}
	avgRidesPerWeek := float64(totalRides) / float64(params.WeeksBack)
	var avgRideDurationMin float64
	if totalRides > 0 {
		avgRideDurationMin = totalHours * 60 / float64(totalRides)
	}

	recentRides := make([]RecentRide, 0, len(recentRidesList))
	for _, ride := range recentRidesList {
		recentRides = append(recentRides, RecentRide{
			Date:            ride.StartTime.Format(dateLayout),
			DurationMinutes: int(math.Round(ride.Duration().Minutes())),
			TSS:             a.cfg.EstimateTSS(ride),
			Type:            a.cfg.ClassifyRide(ride, profile.FTP),
			Title:           ride.Title,
		})
	}

	return &Snapshot{
		GeneratedAt: now,
		Today:       now.Format(dateLayout),
		DayOfWeek:   now.Weekday().String(),
		Profile:     profile,
		Load: LoadInfo{
			WeeklySummaries: summaries,
			CTL:             ctl,
			ATL:             atl,
			TSB:             tsb,
			LoadTrend:       a.cfg.LoadTrend(summaries),
		},
		Performance: PerformanceInfo{
			AvgWeightedPower: avgWeightedPower(windowRides),
			Best20MinPower:   bestPower(bestEffortRides),
			PowerTrend:       a.cfg.PowerTrend(summaries),
		},
		Patterns: PatternsInfo{
			AvgRidesPerWeek:   avgRidesPerWeek,
			AvgRideDuration:   avgRideDurationMin,
			PreferredDays:     a.cfg.PreferredDays(patternRides),
			DaysSinceLastRide: a.cfg.DaysSinceLastRide(now, patternRides),
			DaysSinceRestDay:  a.cfg.TrainingStreakDays(now, patternRides),
			ConsistencyScore:  a.cfg.ConsistencyScore(summaries, profile.WeeklyHoursTarget),
		},
		RecentRides: recentRides,
	}, nil
}

// athleteProfile fetches the stored profile and applies defaults for
// anything the athlete never set. A missing profile is not an error,
// it just means all defaults.
func (a *Analyzer) athleteProfile(ctx context.Context, athleteID int) (ProfileInfo, error) {
	info := ProfileInfo{
		FTP:               a.cfg.DefaultFTP,
		WeeklyHoursTarget: a.cfg.DefaultWeeklyHoursTarget,
	}

	profile, err := a.profiles.Get(ctx, athleteID)
	if err != nil {
		if errors.Is(err, athlete.ErrProfileNotFound) {
			return info, nil
		}
		return ProfileInfo{}, err
	}

	if profile.FTP != nil && *profile.FTP > 0 {
		info.FTP = *profile.FTP
	}
	if profile.WeeklyHoursTarget != nil && *profile.WeeklyHoursTarget > 0 {
		info.WeeklyHoursTarget = *profile.WeeklyHoursTarget
	}
	info.RestingHeartRate = profile.RestingHeartRate
	info.MaxHeartRate = profile.MaxHeartRate
	info.Goal = profile.Goal

	return info, nil
}

// avgWeightedPower is the mean power over the rides that report any,
// or nil when none of them do.
func avgWeightedPower(windowRides []rides.Ride) *int {
	var sum, count int
	for _, ride := range windowRides {
		if power, ok := ride.Power(); ok {
			sum += power
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := int(math.Round(float64(sum) / float64(count)))
	return &avg
}

func bestPower(bestEffortRides []rides.Ride) *int {
	var best *int
	for _, ride := range bestEffortRides {
		power, ok := ride.Power()
		if !ok {
			continue
		}
		if best == nil || power > *best {
			p := power
			best = &p
		}
	}
	return best
}
