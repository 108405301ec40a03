package rides

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velocoach/velocoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRideNotFound = errors.New("ride not found")

type RideParams struct {
	AthleteID          int
	From               *time.Time
	To                 *time.Time
	MinDurationSeconds int
	Limit              int
}

type ListParams struct {
	RideParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, ride Ride) (_ *Ride, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rides.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO ride
				(athlete_id, start_time, title, duration_seconds, distance_km, elevation_gain_m,
				 average_power, normalized_power, average_heart_rate, tss, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id;`,
		ride.AthleteID, ride.StartTime, ride.Title,
		ride.DurationSeconds, ride.DistanceKm, ride.ElevationGainM,
		ride.AveragePower, ride.NormalizedPower, ride.AverageHeartRate,
		ride.TrainingStressScore, ride.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("ride.id", id))

	ride.ID = id
	return &ride, nil
}

func (r *Repo) Update(ctx context.Context, ride *Ride) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rides.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", ride.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE ride SET
				start_time = $1, title = $2, duration_seconds = $3, distance_km = $4,
				elevation_gain_m = $5, average_power = $6, normalized_power = $7,
				average_heart_rate = $8, tss = $9
			WHERE id = $10 AND athlete_id = $11;`,
		ride.StartTime, ride.Title, ride.DurationSeconds, ride.DistanceKm,
		ride.ElevationGainM, ride.AveragePower, ride.NormalizedPower,
		ride.AverageHeartRate, ride.TrainingStressScore,
		ride.ID, ride.AthleteID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrRideNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, athleteID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rides.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM ride WHERE id = $1 AND athlete_id = $2;`,
		id, athleteID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRideNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, athleteID, id int) (_ *Ride, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rides.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, athlete_id, start_time, title, duration_seconds, distance_km, elevation_gain_m,
				average_power, normalized_power, average_heart_rate, tss, created_at
			FROM ride
			WHERE id = $1 AND athlete_id = $2;`,
		id, athleteID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	allRides, err := r.rows2rides(rows)
	if err != nil {
		return nil, err
	}

	if len(allRides) != 1 {
		return nil, ErrRideNotFound
	}

	return &allRides[0], nil
}

// ListAll returns the athlete rides matching the given params,
// most recent first. A zero Limit means no limit.
func (r *Repo) ListAll(ctx context.Context, params RideParams) (_ []Ride, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rides.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", params.AthleteID))
	span.SetAttributes(attribute.Int("min_duration_seconds", params.MinDurationSeconds))
	span.SetAttributes(attribute.Int("limit", params.Limit))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, athlete_id, start_time, title, duration_seconds, distance_km, elevation_gain_m,
				average_power, normalized_power, average_heart_rate, tss, created_at
			FROM ride
				WHERE athlete_id = $1
				AND ($2::timestamptz IS NULL OR start_time >= $2)
				AND ($3::timestamptz IS NULL OR start_time < $3)
				AND ($4::int = 0 OR duration_seconds >= $4)
			ORDER BY start_time DESC
			LIMIT NULLIF($5::int, 0);`,
		params.AthleteID,
		params.From, params.To,
		params.MinDurationSeconds,
		params.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	allRides, err := r.rows2rides(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2rides: %w", err)
	}
	return allRides, nil
}

// List is like ListAll, but returns the specific PAGE of rides,
// i.e. is used for pagination.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Ride, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rides.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))
	span.SetAttributes(attribute.Int("athlete_id", params.AthleteID))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	countAll, err := r.RidesCount(ctx, params.RideParams)
	if err != nil {
		return nil, -1, err
	}

	if countAll <= limit {
		limit = countAll
		offset = 0
	}

	if countAll-offset < limit {
		offset = countAll - limit
	}

	span.SetAttributes(attribute.Int("count_all", countAll))
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("offset", offset))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, athlete_id, start_time, title, duration_seconds, distance_km, elevation_gain_m,
				average_power, normalized_power, average_heart_rate, tss, created_at
			FROM ride
				WHERE athlete_id = $1
				AND ($2::timestamptz IS NULL OR start_time >= $2)
				AND ($3::timestamptz IS NULL OR start_time < $3)
			ORDER BY start_time DESC
			LIMIT $4
			OFFSET $5;`,
		params.AthleteID,
		params.From, params.To,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	allRides, err := r.rows2rides(rows)
	if err != nil {
		return nil, -1, err
	}
	return allRides, countAll, nil
}

func (r *Repo) RidesCount(ctx context.Context, params RideParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rides.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM ride
			WHERE athlete_id = $1
			AND ($2::timestamptz IS NULL OR start_time >= $2)
			AND ($3::timestamptz IS NULL OR start_time < $3);
	`,
		params.AthleteID,
		params.From, params.To,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get rides count")
}

func (r *Repo) rows2rides(rows pgx.Rows) ([]Ride, error) {
	var allRides []Ride
	for rows.Next() {
		var ride Ride
		if err := rows.Scan(
			&ride.ID, &ride.AthleteID, &ride.StartTime, &ride.Title,
			&ride.DurationSeconds, &ride.DistanceKm, &ride.ElevationGainM,
			&ride.AveragePower, &ride.NormalizedPower, &ride.AverageHeartRate,
			&ride.TrainingStressScore, &ride.CreatedAt,
		); err != nil {
			return nil, err
		}
		allRides = append(allRides, ride)
	}

	if allRides == nil {
		allRides = make([]Ride, 0)
	}

	return allRides, nil
}
