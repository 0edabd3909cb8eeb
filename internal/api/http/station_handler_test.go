package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "umbrella-fleet-backend/internal/api/http"
	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStationService struct {
	stations []domain.Station
	err      error
	deleted  []int32
}

func (s *stubStationService) ListStations(ctx context.Context) ([]domain.Station, error) {
	return s.stations, s.err
}

func (s *stubStationService) GetStation(ctx context.Context, id int32) (*domain.Station, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.stations {
		if s.stations[i].StationID == id {
			return &s.stations[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubStationService) CreateStation(ctx context.Context, st *domain.Station) error {
	if s.err != nil {
		return s.err
	}
	st.StationID = int32(len(s.stations) + 1)
	s.stations = append(s.stations, *st)
	return nil
}

func (s *stubStationService) UpdateStation(ctx context.Context, st *domain.Station) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.stations {
		if s.stations[i].StationID == st.StationID {
			s.stations[i] = *st
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *stubStationService) DeleteStation(ctx context.Context, id int32) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.stations {
		if s.stations[i].StationID == id {
			s.stations = append(s.stations[:i], s.stations[i+1:]...)
			s.deleted = append(s.deleted, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

func stationRouter(svc *stubStationService) *mux.Router {
	r := mux.NewRouter()
	api.NewStationHandler(svc).Register(r.PathPrefix("/api").Subrouter())
	return r
}

func TestStationHandler_List(t *testing.T) {
	t.Run("PlainArrayWithoutQueryParams", func(t *testing.T) {
		svc := &stubStationService{stations: []domain.Station{
			{StationID: 1, StationName: "Central", Capacity: 10, CurrentStock: 1},
		}}
		rec := httptest.NewRecorder()
		stationRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stations", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []domain.Station
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, int32(1), got[0].CurrentStock)
	})

	t.Run("EmptyListIsArrayNotNull", func(t *testing.T) {
		rec := httptest.NewRecorder()
		stationRouter(&stubStationService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stations", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("PagedEnvelopeWithQueryParams", func(t *testing.T) {
		svc := &stubStationService{}
		for i := 1; i <= 15; i++ {
			svc.stations = append(svc.stations, domain.Station{StationID: int32(i), StationName: fmt.Sprintf("Station %d", i)})
		}
		rec := httptest.NewRecorder()
		stationRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stations?page=2", nil))

		var envelope struct {
			Items     []domain.Station `json:"items"`
			Page      int              `json:"page"`
			PageCount int              `json:"pageCount"`
			Total     int              `json:"total"`
			Summary   string           `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Len(t, envelope.Items, 3)
		assert.Equal(t, 2, envelope.Page)
		assert.Equal(t, 2, envelope.PageCount)
		assert.Equal(t, "Showing 13 to 15 of 15 entries", envelope.Summary)
	})

	t.Run("FilteredToNothing", func(t *testing.T) {
		svc := &stubStationService{stations: []domain.Station{{StationID: 1, StationName: "Central"}}}
		rec := httptest.NewRecorder()
		stationRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stations?q=zzz", nil))

		var envelope struct {
			PageCount int    `json:"pageCount"`
			Total     int    `json:"total"`
			Summary   string `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, 1, envelope.PageCount)
		assert.Equal(t, 0, envelope.Total)
		assert.Equal(t, "Showing 0 to 0 of 0 entries", envelope.Summary)
	})
}

func TestStationHandler_Get(t *testing.T) {
	svc := &stubStationService{stations: []domain.Station{{StationID: 1, StationName: "Central"}}}
	router := stationRouter(svc)

	t.Run("Found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stations/1", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stations/99", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("NonNumericID", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stations/abc", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStationHandler_Create(t *testing.T) {
	svc := &stubStationService{}
	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"StationName":"Central","Latitude":18.79,"Longitude":98.95,"Capacity":10}`)
	stationRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/stations", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "New station added", resp["message"])
	assert.Equal(t, float64(1), resp["id"])
}

func TestStationHandler_Update(t *testing.T) {
	svc := &stubStationService{stations: []domain.Station{{StationID: 1, StationName: "Central", Capacity: 10}}}
	router := stationRouter(svc)

	t.Run("FullOverwrite", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"StationName":"Central","Latitude":18.79,"Longitude":98.95,"Capacity":12}`)
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/stations/1", body))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int32(12), svc.stations[0].Capacity)
	})

	t.Run("Missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"StationName":"Nowhere","Capacity":1}`)
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/stations/99", body))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStationHandler_Delete(t *testing.T) {
	svc := &stubStationService{stations: []domain.Station{{StationID: 1, StationName: "Central"}}}
	router := stationRouter(svc)

	t.Run("Success", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/stations/1", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int32{1}, svc.deleted)
	})

	t.Run("AlreadyGone", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/stations/1", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStationHandler_StoreFailure(t *testing.T) {
	svc := &stubStationService{err: fmt.Errorf("connection reset")}
	rec := httptest.NewRecorder()
	stationRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stations", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
