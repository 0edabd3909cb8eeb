package http

import (
	"net/http"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/metrics"
	"umbrella-fleet-backend/internal/service"
	"umbrella-fleet-backend/internal/table"

	"github.com/gorilla/mux"
)

type RentalHistoryHandler struct {
	rentalSvc service.RentalHistoryService
}

func NewRentalHistoryHandler(rentalSvc service.RentalHistoryService) *RentalHistoryHandler {
	return &RentalHistoryHandler{rentalSvc: rentalSvc}
}

func (h *RentalHistoryHandler) Register(r *mux.Router) {
	r.HandleFunc("/rental-histories", h.List).Methods(http.MethodGet)
	r.HandleFunc("/rental-histories", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/rental-histories/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/rental-histories/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/rental-histories/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/heatmap-data", h.Heatmap).Methods(http.MethodGet)
}

func (h *RentalHistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListRentalHistories(r.Context())
	if err != nil {
		writeRepoError(w, err, "Rental histories")
		return
	}
	respondList(w, r, rentals, table.MatchRentalHistory)
}

func (h *RentalHistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Rental history")
	if !ok {
		return
	}
	rental, err := h.rentalSvc.GetRentalHistory(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "Rental history")
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHistoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rental domain.RentalHistory
	if !decodeBody(w, r, &rental) {
		return
	}
	if err := h.rentalSvc.CreateRentalHistory(r.Context(), &rental); err != nil {
		writeRepoError(w, err, "Rental history")
		return
	}
	metrics.RowsCreated.WithLabelValues("rental_history").Inc()
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":                   rental.RentalHistoryID,
		"AccountID":            rental.AccountID,
		"UmbrellaID":           rental.UmbrellaID,
		"StartStationID":       rental.StartStationID,
		"DestinationStationID": rental.DestinationStationID,
		"CardID":               rental.CardID,
		"StartRentalTime":      rental.StartRentalTime,
		"EndRentalTime":        rental.EndRentalTime,
		"Price":                rental.Price,
	})
}

func (h *RentalHistoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Rental history")
	if !ok {
		return
	}
	var rental domain.RentalHistory
	if !decodeBody(w, r, &rental) {
		return
	}
	rental.RentalHistoryID = id
	if err := h.rentalSvc.UpdateRentalHistory(r.Context(), &rental); err != nil {
		writeRepoError(w, err, "Rental history")
		return
	}
	metrics.RowsUpdated.WithLabelValues("rental_history").Inc()
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Rental history")
	if !ok {
		return
	}
	if err := h.rentalSvc.DeleteRentalHistory(r.Context(), id); err != nil {
		writeRepoError(w, err, "Rental history")
		return
	}
	metrics.RowsDeleted.WithLabelValues("rental_history").Inc()
	writeMessage(w, http.StatusOK, "Rental history deleted successfully")
}

func (h *RentalHistoryHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	points, err := h.rentalSvc.HeatmapData(r.Context())
	if err != nil {
		writeRepoError(w, err, "Heatmap data")
		return
	}
	if points == nil {
		points = []domain.HeatmapPoint{}
	}
	writeJSON(w, http.StatusOK, points)
}
