package http_test

import (
	"context"
	"encoding/json"
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

type stubRentalService struct {
	views   []domain.RentalHistoryView
	details map[int32]*domain.RentalHistoryDetail
	points  []domain.HeatmapPoint
	created *domain.RentalHistory
}

func (s *stubRentalService) ListRentalHistories(ctx context.Context) ([]domain.RentalHistoryView, error) {
	return s.views, nil
}

func (s *stubRentalService) GetRentalHistory(ctx context.Context, id int32) (*domain.RentalHistoryDetail, error) {
	if d, ok := s.details[id]; ok {
		return d, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubRentalService) CreateRentalHistory(ctx context.Context, r *domain.RentalHistory) error {
	r.RentalHistoryID = 9
	s.created = r
	return nil
}

func (s *stubRentalService) UpdateRentalHistory(ctx context.Context, r *domain.RentalHistory) error {
	return repository.ErrNotFound
}

func (s *stubRentalService) DeleteRentalHistory(ctx context.Context, id int32) error {
	return repository.ErrNotFound
}

func (s *stubRentalService) HeatmapData(ctx context.Context) ([]domain.HeatmapPoint, error) {
	return s.points, nil
}

func rentalRouter(svc *stubRentalService) *mux.Router {
	r := mux.NewRouter()
	api.NewRentalHistoryHandler(svc).Register(r.PathPrefix("/api").Subrouter())
	return r
}

func TestRentalHistoryHandler_ListShowsActiveRental(t *testing.T) {
	svc := &stubRentalService{views: []domain.RentalHistoryView{
		{RentalHistoryID: 2, UmbrellaID: 4, FirstName: "Ada", LastName: "Wong", StartStationID: 1, StartStationName: "Central", StartRentalTime: "2024-05-06 10:30:00"},
	}}
	rec := httptest.NewRecorder()
	rentalRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rental-histories", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []domain.RentalHistoryView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Nil(t, got[0].EndRentalTime)
	assert.Nil(t, got[0].DestinationStationName)
}

// An active rental is in the list but the detail query cannot see it; the id
// route answers 404 for it.
func TestRentalHistoryHandler_GetOpenRental(t *testing.T) {
	svc := &stubRentalService{
		views: []domain.RentalHistoryView{
			{RentalHistoryID: 2, UmbrellaID: 4, FirstName: "Ada", LastName: "Wong", StartStationName: "Central"},
		},
		details: map[int32]*domain.RentalHistoryDetail{},
	}
	rec := httptest.NewRecorder()
	rentalRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rental-histories/2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRentalHistoryHandler_Create(t *testing.T) {
	svc := &stubRentalService{}
	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"AccountID":2,"UmbrellaID":4,"StartStationID":1,"StartRentalTime":"2024-05-06T10:30:00Z","EndRentalTime":null,"DestinationStationID":null,"Price":15}`)
	rentalRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/rental-histories", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(9), resp["id"])
	assert.Nil(t, resp["EndRentalTime"])
	require.NotNil(t, svc.created)
	assert.Nil(t, svc.created.EndRentalTime)
}

func TestRentalHistoryHandler_Heatmap(t *testing.T) {
	t.Run("EmptyIsArrayNotNull", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rentalRouter(&stubRentalService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/heatmap-data", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("CoordinatePairs", func(t *testing.T) {
		svc := &stubRentalService{points: []domain.HeatmapPoint{
			{StartStationID: 1, StartLatitude: 18.79, StartLongitude: 98.95, DestinationStationID: 2, DestinationLatitude: 18.78, DestinationLongitude: 98.99},
		}}
		rec := httptest.NewRecorder()
		rentalRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/heatmap-data", nil))

		var got []domain.HeatmapPoint
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, 18.79, got[0].StartLatitude)
	})
}
