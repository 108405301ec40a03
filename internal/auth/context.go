package auth

import "context"

type contextKey string

const athleteIDContextKey contextKey = "athlete-id"

func ContextWithAthleteID(ctx context.Context, athleteID int) context.Context {
	return context.WithValue(ctx, athleteIDContextKey, athleteID)
}

// AthleteIDFromContext returns the authenticated athlete ID, set by the auth middleware.
func AthleteIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(athleteIDContextKey).(int)
	return id, ok
}
