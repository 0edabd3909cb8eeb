package http

import (
	"net/http"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/metrics"
	"umbrella-fleet-backend/internal/service"
	"umbrella-fleet-backend/internal/table"

	"github.com/gorilla/mux"
)

type MaintenanceHistoryHandler struct {
	historySvc service.MaintenanceHistoryService
}

func NewMaintenanceHistoryHandler(historySvc service.MaintenanceHistoryService) *MaintenanceHistoryHandler {
	return &MaintenanceHistoryHandler{historySvc: historySvc}
}

func (h *MaintenanceHistoryHandler) Register(r *mux.Router) {
	r.HandleFunc("/maintenance-histories", h.List).Methods(http.MethodGet)
	r.HandleFunc("/maintenance-histories", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/maintenance-histories/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/maintenance-histories/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/maintenance-histories/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *MaintenanceHistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	histories, err := h.historySvc.ListMaintenanceHistories(r.Context())
	if err != nil {
		writeRepoError(w, err, "Maintenance histories")
		return
	}
	respondList(w, r, histories, table.MatchMaintenanceHistory)
}

func (h *MaintenanceHistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Maintenance history")
	if !ok {
		return
	}
	history, err := h.historySvc.GetMaintenanceHistory(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "Maintenance history")
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *MaintenanceHistoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var history domain.MaintenanceHistory
	if !decodeBody(w, r, &history) {
		return
	}
	if err := h.historySvc.CreateMaintenanceHistory(r.Context(), &history); err != nil {
		writeRepoError(w, err, "Maintenance history")
		return
	}
	metrics.RowsCreated.WithLabelValues("maintenance_history").Inc()
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":              history.MaintenanceHistoryID,
		"MaintenanceTime": history.MaintenanceTime,
		"MaintainerID":    history.MaintainerID,
		"StationID":       history.StationID,
		"Report":          history.Report,
	})
}

func (h *MaintenanceHistoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Maintenance history")
	if !ok {
		return
	}
	var history domain.MaintenanceHistory
	if !decodeBody(w, r, &history) {
		return
	}
	history.MaintenanceHistoryID = id
	if err := h.historySvc.UpdateMaintenanceHistory(r.Context(), &history); err != nil {
		writeRepoError(w, err, "Maintenance history")
		return
	}
	metrics.RowsUpdated.WithLabelValues("maintenance_history").Inc()
	writeJSON(w, http.StatusOK, history)
}

func (h *MaintenanceHistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Maintenance history")
	if !ok {
		return
	}
	if err := h.historySvc.DeleteMaintenanceHistory(r.Context(), id); err != nil {
		writeRepoError(w, err, "Maintenance history")
		return
	}
	metrics.RowsDeleted.WithLabelValues("maintenance_history").Inc()
	writeMessage(w, http.StatusOK, "Maintenance history deleted successfully")
}
