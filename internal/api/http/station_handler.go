package http

import (
	"net/http"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/metrics"
	"umbrella-fleet-backend/internal/service"
	"umbrella-fleet-backend/internal/table"

	"github.com/gorilla/mux"
)

type StationHandler struct {
	stationSvc service.StationService
}

func NewStationHandler(stationSvc service.StationService) *StationHandler {
	return &StationHandler{stationSvc: stationSvc}
}

func (h *StationHandler) Register(r *mux.Router) {
	r.HandleFunc("/stations", h.List).Methods(http.MethodGet)
	r.HandleFunc("/stations", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/stations/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/stations/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/stations/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.stationSvc.ListStations(r.Context())
	if err != nil {
		writeRepoError(w, err, "Stations")
		return
	}
	respondList(w, r, stations, table.MatchStation)
}

func (h *StationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Station")
	if !ok {
		return
	}
	station, err := h.stationSvc.GetStation(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "Station")
		return
	}
	writeJSON(w, http.StatusOK, station)
}

func (h *StationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var station domain.Station
	if !decodeBody(w, r, &station) {
		return
	}
	if err := h.stationSvc.CreateStation(r.Context(), &station); err != nil {
		writeRepoError(w, err, "Station")
		return
	}
	metrics.RowsCreated.WithLabelValues("station").Inc()
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "New station added",
		"id":      station.StationID,
	})
}

func (h *StationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Station")
	if !ok {
		return
	}
	var station domain.Station
	if !decodeBody(w, r, &station) {
		return
	}
	station.StationID = id
	if err := h.stationSvc.UpdateStation(r.Context(), &station); err != nil {
		writeRepoError(w, err, "Station")
		return
	}
	metrics.RowsUpdated.WithLabelValues("station").Inc()
	writeMessage(w, http.StatusOK, "Station updated successfully")
}

func (h *StationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Station")
	if !ok {
		return
	}
	if err := h.stationSvc.DeleteStation(r.Context(), id); err != nil {
		writeRepoError(w, err, "Station")
		return
	}
	metrics.RowsDeleted.WithLabelValues("station").Inc()
	writeMessage(w, http.StatusOK, "Station deleted successfully")
}
