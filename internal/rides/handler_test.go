package rides_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/velocoach/velocoach/internal/auth"
	"github.com/velocoach/velocoach/internal/rides"
	"github.com/velocoach/velocoach/internal/telemetry/metrics"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type handlerTestSuite struct {
	repo    *MockridesRepo
	handler *rides.Handler
	router  *mux.Router
}

func newHandlerTestSuite(t *testing.T) *handlerTestSuite {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockridesRepo(ctrl)
	handler := rides.NewHandler(repo, metrics.NewTestManager())

	router := mux.NewRouter()
	router.HandleFunc("/rides", handler.HandleAdd).Methods("POST")
	router.HandleFunc("/rides", handler.HandleUpdate).Methods("PUT")
	router.HandleFunc("/rides/page/{page}/size/{size}", handler.HandleList).Methods("GET")
	router.HandleFunc("/rides/{id}", handler.HandleGet).Methods("GET")
	router.HandleFunc("/rides/{id}", handler.HandleDelete).Methods("DELETE")

	return &handlerTestSuite{
		repo:    repo,
		handler: handler,
		router:  router,
	}
}

func authedRequest(t *testing.T, athleteID int, method, target string, body []byte) *http.Request {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req, err = http.NewRequest(method, target, nil)
	}
	require.NoError(t, err)
	return req.WithContext(auth.ContextWithAthleteID(req.Context(), athleteID))
}

func TestHandler_Add(t *testing.T) {
	suite := newHandlerTestSuite(t)

	startTime := time.Date(2025, 4, 12, 9, 30, 0, 0, time.UTC)
	durationSeconds := 5400
	averagePower := 210
	newRide := rides.Ride{
		StartTime:       startTime,
		Title:           "Saturday group ride",
		DurationSeconds: &durationSeconds,
		AveragePower:    &averagePower,
	}

	suite.repo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, ride rides.Ride) (*rides.Ride, error) {
			assert.Equal(t, 12, ride.AthleteID)
			assert.Equal(t, startTime, ride.StartTime)
			assert.False(t, ride.CreatedAt.IsZero())
			ride.ID = 77
			return &ride, nil
		})

	rideJson, err := json.Marshal(newRide)
	require.NoError(t, err)

	req := authedRequest(t, 12, "POST", "/rides", rideJson)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var addedRide rides.Ride
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &addedRide))
	assert.Equal(t, 77, addedRide.ID)
	assert.Equal(t, "Saturday group ride", addedRide.Title)
	require.NotNil(t, addedRide.DurationSeconds)
	assert.Equal(t, 5400, *addedRide.DurationSeconds)
}

func TestHandler_Add_invalidContentType(t *testing.T) {
	suite := newHandlerTestSuite(t)

	req := authedRequest(t, 12, "POST", "/rides", []byte(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_Add_missingStartTime(t *testing.T) {
	suite := newHandlerTestSuite(t)

	req := authedRequest(t, 12, "POST", "/rides", []byte(`{"title":"no start time"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_Add_unauthorized(t *testing.T) {
	suite := newHandlerTestSuite(t)

	req, err := http.NewRequest("POST", "/rides", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandler_Get(t *testing.T) {
	suite := newHandlerTestSuite(t)

	durationSeconds := 3600
	suite.repo.EXPECT().
		Get(gomock.Any(), 12, 55).
		Return(&rides.Ride{
			ID:              55,
			AthleteID:       12,
			Title:           "Morning spin",
			StartTime:       time.Date(2025, 4, 10, 7, 0, 0, 0, time.UTC),
			DurationSeconds: &durationSeconds,
		}, nil)

	req := authedRequest(t, 12, "GET", "/rides/55", nil)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var ride rides.Ride
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ride))
	assert.Equal(t, 55, ride.ID)
	assert.Equal(t, "Morning spin", ride.Title)
}

func TestHandler_Get_notFound(t *testing.T) {
	suite := newHandlerTestSuite(t)

	suite.repo.EXPECT().
		Get(gomock.Any(), 12, 55).
		Return(nil, rides.ErrRideNotFound)

	req := authedRequest(t, 12, "GET", "/rides/55", nil)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_List(t *testing.T) {
	suite := newHandlerTestSuite(t)

	suite.repo.EXPECT().
		List(gomock.Any(), rides.ListParams{
			RideParams: rides.RideParams{AthleteID: 12},
			Page:       2,
			Size:       10,
		}).
		Return([]rides.Ride{
			{ID: 31, AthleteID: 12, Title: "Tempo intervals"},
			{ID: 30, AthleteID: 12, Title: "Recovery loop"},
		}, 25, nil)

	req := authedRequest(t, 12, "GET", "/rides/page/2/size/10", nil)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var listResponse rides.ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listResponse))
	assert.Equal(t, 25, listResponse.Total)
	require.Len(t, listResponse.Rides, 2)
	assert.Equal(t, 31, listResponse.Rides[0].ID)
}

func TestHandler_List_invalidPage(t *testing.T) {
	suite := newHandlerTestSuite(t)

	req := authedRequest(t, 12, "GET", "/rides/page/0/size/10", nil)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_Update(t *testing.T) {
	suite := newHandlerTestSuite(t)

	startTime := time.Date(2025, 4, 12, 9, 30, 0, 0, time.UTC)
	ride := rides.Ride{
		ID:        55,
		StartTime: startTime,
		Title:     "Renamed ride",
	}

	suite.repo.EXPECT().
		Get(gomock.Any(), 12, 55).
		Return(&rides.Ride{ID: 55, AthleteID: 12}, nil)
	suite.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, updated *rides.Ride) error {
			assert.Equal(t, 12, updated.AthleteID)
			assert.Equal(t, "Renamed ride", updated.Title)
			return nil
		})

	rideJson, err := json.Marshal(ride)
	require.NoError(t, err)

	req := authedRequest(t, 12, "PUT", "/rides", rideJson)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, fmt.Sprintf(`{"updatedId":%d}`, 55), rr.Body.String())
}

func TestHandler_Delete(t *testing.T) {
	suite := newHandlerTestSuite(t)

	suite.repo.EXPECT().
		Delete(gomock.Any(), 12, 55).
		Return(nil)

	req := authedRequest(t, 12, "DELETE", "/rides/55", nil)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, fmt.Sprintf(`{"deletedId":%d}`, 55), rr.Body.String())
}

func TestHandler_Delete_notFound(t *testing.T) {
	suite := newHandlerTestSuite(t)

	suite.repo.EXPECT().
		Delete(gomock.Any(), 12, 55).
		Return(rides.ErrRideNotFound)

	req := authedRequest(t, 12, "DELETE", "/rides/55", nil)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
