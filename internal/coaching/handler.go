package coaching

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/velocoach/velocoach/internal/auth"
	"github.com/velocoach/velocoach/internal/telemetry/metrics"
	"github.com/velocoach/velocoach/internal/telemetry/tracing"
	"github.com/velocoach/velocoach/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=coaching_test

type contextBuilder interface {
	TrainingContext(ctx context.Context, athleteID int, params ContextParams) (*Snapshot, error)
}

type snapshotCache interface {
	Get(ctx context.Context, athleteID int) (*Snapshot, error)
	Set(ctx context.Context, athleteID int, snapshot *Snapshot) error
}

type Handler struct {
	analyzer contextBuilder
	cache    snapshotCache
	metrics  *metrics.Manager
}

func NewHandler(analyzer contextBuilder, cache snapshotCache, metrics *metrics.Manager) *Handler {
	return &Handler{
		analyzer: analyzer,
		cache:    cache,
		metrics:  metrics,
	}
}

// HandleContext serves the coaching context snapshot for the logged-in
// athlete. Requests with default parameters are answered from the
// snapshot cache when possible; parameterized requests always build.
func (handler *Handler) HandleContext(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "coachingHandler.context")
	defer span.End()

	athleteID, ok := auth.AthleteIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var params ContextParams
	params.RecentRides = -1
	if weeksBackStr := r.URL.Query().Get("weeks_back"); weeksBackStr != "" {
		weeksBack, err := strconv.Atoi(weeksBackStr)
		if err != nil || weeksBack < 1 {
			http.Error(w, "invalid weeks_back param", http.StatusBadRequest)
			return
		}
		params.WeeksBack = weeksBack
	}
	if recentRidesStr := r.URL.Query().Get("recent_rides"); recentRidesStr != "" {
		recentRides, err := strconv.Atoi(recentRidesStr)
		if err != nil || recentRides < 0 {
			http.Error(w, "invalid recent_rides param", http.StatusBadRequest)
			return
		}
		params.RecentRides = recentRides
	}

	defaultParams := params.WeeksBack == 0 && params.RecentRides == -1

	if defaultParams {
		snapshot, err := handler.cache.Get(ctx, athleteID)
		switch {
		case err == nil:
			handler.metrics.CounterSnapshotCacheHits.Inc()
			handler.writeSnapshot(w, snapshot)
			return
		case errors.Is(err, ErrSnapshotNotCached):
			handler.metrics.CounterSnapshotCacheMiss.Inc()
		default:
			// redis down is not a reason to refuse the request
			log.Errorf("failed to get cached snapshot for athlete %d: %s", athleteID, err)
			handler.metrics.CounterSnapshotCacheMiss.Inc()
		}
	}

	buildStart := time.Now()
	snapshot, err := handler.analyzer.TrainingContext(ctx, athleteID, params)
	if err != nil {
		log.Errorf("failed to build context snapshot for athlete %d: %s", athleteID, err)
		http.Error(w, "failed to build context snapshot", http.StatusInternalServerError)
		return
	}
	handler.metrics.HistSnapshotBuildDuration.Observe(time.Since(buildStart).Seconds())
	handler.metrics.CounterSnapshotsBuilt.Inc()

	if defaultParams {
		if err := handler.cache.Set(ctx, athleteID, snapshot); err != nil {
			log.Errorf("failed to cache snapshot for athlete %d: %s", athleteID, err)
		}
	}

	handler.writeSnapshot(w, snapshot)
}

func (handler *Handler) writeSnapshot(w http.ResponseWriter, snapshot *Snapshot) {
	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("failed to marshal context snapshot: %s", err)
		http.Error(w, "failed to marshal context snapshot", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, snapshotJson)
}
