package athlete

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/velocoach/velocoach/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("athlete profile not found")

const (
	megabyte           = 1024 * 1024
	profileCacheExpire = 5 * 60 // seconds
)

type Repo struct {
	db    *pgxpool.Pool
	cache *freecache.Cache
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:    db,
		cache: freecache.NewCache(megabyte),
	}
}

func profileCacheKey(athleteID int) []byte {
	return []byte(fmt.Sprintf("profile::%d", athleteID))
}

func (r *Repo) Get(ctx context.Context, athleteID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athlete.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", athleteID))

	if profileBytes, err := r.cache.Get(profileCacheKey(athleteID)); err == nil {
		var profile Profile
		if err := json.Unmarshal(profileBytes, &profile); err == nil {
			log.Tracef("found profile for athlete %d in cache", athleteID)
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &profile, nil
		}
		log.Errorf("failed to unmarshal cached profile for athlete %d: %s", athleteID, err)
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, username, password_hash, ftp, weekly_hours_target,
				resting_heart_rate, max_heart_rate, goal, created_at, updated_at
			FROM athlete
			WHERE id = $1;`,
		athleteID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	profiles, err := r.rows2profiles(rows)
	if err != nil {
		return nil, err
	}
	if len(profiles) != 1 {
		return nil, ErrProfileNotFound
	}

	profile := profiles[0]
	if profileBytes, err := json.Marshal(profile); err == nil {
		if err := r.cache.Set(profileCacheKey(athleteID), profileBytes, profileCacheExpire); err != nil {
			log.Errorf("failed to cache profile for athlete %d: %s", athleteID, err)
		}
	}

	return &profile, nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athlete.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, username, password_hash, ftp, weekly_hours_target,
				resting_heart_rate, max_heart_rate, goal, created_at, updated_at
			FROM athlete
			WHERE username = $1;`,
		username,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	profiles, err := r.rows2profiles(rows)
	if err != nil {
		return nil, err
	}
	if len(profiles) != 1 {
		return nil, ErrProfileNotFound
	}

	return &profiles[0], nil
}

func (r *Repo) Update(ctx context.Context, profile *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athlete.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", profile.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE athlete SET
				ftp = $1, weekly_hours_target = $2, resting_heart_rate = $3,
				max_heart_rate = $4, goal = $5, updated_at = NOW()
			WHERE id = $6;`,
		profile.FTP, profile.WeeklyHoursTarget, profile.RestingHeartRate,
		profile.MaxHeartRate, profile.Goal, profile.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	r.cache.Del(profileCacheKey(profile.ID))

	return nil
}

func (r *Repo) rows2profiles(rows pgx.Rows) ([]Profile, error) {
	var profiles []Profile
	for rows.Next() {
		var profile Profile
		if err := rows.Scan(
			&profile.ID, &profile.Username, &profile.PasswordHash,
			&profile.FTP, &profile.WeeklyHoursTarget,
			&profile.RestingHeartRate, &profile.MaxHeartRate, &profile.Goal,
			&profile.CreatedAt, &profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if profiles == nil {
		profiles = make([]Profile, 0)
	}

	return profiles, nil
}
