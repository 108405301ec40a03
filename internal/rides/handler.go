package rides

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/velocoach/velocoach/internal/auth"
	"github.com/velocoach/velocoach/internal/telemetry/metrics"
	"github.com/velocoach/velocoach/internal/telemetry/tracing"
	"github.com/velocoach/velocoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=rides_mocks_test.go -package=rides_test

type ridesRepo interface {
	Add(ctx context.Context, ride Ride) (*Ride, error)
	Get(ctx context.Context, athleteID, id int) (*Ride, error)
	List(ctx context.Context, params ListParams) (_ []Ride, total int, err error)
	ListAll(ctx context.Context, params RideParams) ([]Ride, error)
	Update(ctx context.Context, ride *Ride) error
	Delete(ctx context.Context, athleteID, id int) error
	RidesCount(ctx context.Context, params RideParams) (int, error)
}

type DeleteRideResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateRideResponse struct {
	UpdatedID int `json:"updatedId"`
}

type ListResponse struct {
	Rides []Ride `json:"rides"`
	Total int    `json:"total"`
}

type Handler struct {
	repo    ridesRepo
	metrics *metrics.Manager
}

func NewHandler(repo ridesRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rides.new")
	defer span.End()

	athleteID, ok := auth.AthleteIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var ride Ride
	if err := json.NewDecoder(r.Body).Decode(&ride); err != nil {
		log.Tracef("new ride, unmarshal json params: %s", err)
		http.Error(w, "add ride failed", http.StatusBadRequest)
		return
	}

	if ride.StartTime.IsZero() {
		http.Error(w, "error, ride start time empty", http.StatusBadRequest)
		return
	}
	if ride.DurationSeconds != nil && *ride.DurationSeconds < 0 {
		http.Error(w, "error, negative ride duration", http.StatusBadRequest)
		return
	}

	ride.AthleteID = athleteID
	if ride.CreatedAt.IsZero() {
		ride.CreatedAt = time.Now()
	}

	addedRide, err := handler.repo.Add(ctx, ride)
	if err != nil {
		log.Errorf("failed to add new ride for athlete %d: %s", athleteID, err)
		http.Error(w, "error, failed to add new ride", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterRidesAdded.Inc()

	addedRideJson, err := json.Marshal(addedRide)
	if err != nil {
		log.Errorf("failed to marshal new ride: %s", err)
		http.Error(w, "error, failed to add new ride", http.StatusInternalServerError)
		return
	}

	log.Debugf("new ride added: %s", addedRideJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedRideJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rides.get")
	defer span.End()

	athleteID, ok := auth.AthleteIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	ride, err := handler.repo.Get(ctx, athleteID, id)
	if err != nil {
		log.Errorf("failed to get ride %d: %s", id, err)
		http.Error(w, "ride not found", http.StatusNotFound)
		return
	}

	rideJson, err := json.Marshal(ride)
	if err != nil {
		log.Errorf("failed to marshal ride: %s", err)
		http.Error(w, "failed to marshal ride", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, rideJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rides.list")
	defer span.End()

	athleteID, ok := auth.AthleteIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list rides, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list rides, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	listParams := ListParams{
		RideParams: RideParams{
			AthleteID: athleteID,
		},
		Page: page,
		Size: size,
	}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "failed to parse from param", http.StatusBadRequest)
			return
		}
		listParams.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "failed to parse to param", http.StatusBadRequest)
			return
		}
		listParams.To = &to
	}

	ridesPage, total, err := handler.repo.List(ctx, listParams)
	if err != nil {
		log.Errorf("list rides error: %s", err)
		http.Error(w, "failed to get rides", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Rides: ridesPage,
		Total: total,
	})
	if err != nil {
		log.Errorf("marshal rides error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rides.update")
	defer span.End()

	athleteID, ok := auth.AthleteIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var ride Ride
	if err := json.NewDecoder(r.Body).Decode(&ride); err != nil {
		log.Errorf("update ride, unmarshal json params: %s", err)
		http.Error(w, "update ride failed", http.StatusBadRequest)
		return
	}

	if ride.StartTime.IsZero() {
		http.Error(w, "error, ride start time empty", http.StatusBadRequest)
		return
	}

	ride.AthleteID = athleteID

	currentRide, err := handler.repo.Get(ctx, athleteID, ride.ID)
	if err != nil && !errors.Is(err, ErrRideNotFound) {
		log.Errorf("failed to get ride %d: %s", ride.ID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrRideNotFound) {
		log.Debugf("ride %d not found", ride.ID)
		http.Error(w, "ride not found", http.StatusNotFound)
		return
	}
	log.Debugf("update ride %+v -> %+v", currentRide, ride)

	if err := handler.repo.Update(ctx, &ride); err != nil {
		log.Errorf("failed to update ride %d: %s", ride.ID, err)
		http.Error(w, "error, failed to update ride", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateRideResponse{
		UpdatedID: ride.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rides.delete")
	defer span.End()

	athleteID, ok := auth.AthleteIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, athleteID, id); err != nil {
		if errors.Is(err, ErrRideNotFound) {
			log.Debugf("ride %d not found", id)
			http.Error(w, "ride not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete ride %d: %s", id, err)
		http.Error(w, "ride not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteRideResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
