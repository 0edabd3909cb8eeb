package http

import (
	"net/http"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/metrics"
	"umbrella-fleet-backend/internal/service"
	"umbrella-fleet-backend/internal/table"

	"github.com/gorilla/mux"
)

type UmbrellaHandler struct {
	umbrellaSvc service.UmbrellaService
}

func NewUmbrellaHandler(umbrellaSvc service.UmbrellaService) *UmbrellaHandler {
	return &UmbrellaHandler{umbrellaSvc: umbrellaSvc}
}

func (h *UmbrellaHandler) Register(r *mux.Router) {
	r.HandleFunc("/umbrellas", h.List).Methods(http.MethodGet)
	r.HandleFunc("/umbrellas", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/umbrellas/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/umbrellas/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/umbrellas/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *UmbrellaHandler) List(w http.ResponseWriter, r *http.Request) {
	umbrellas, err := h.umbrellaSvc.ListUmbrellas(r.Context())
	if err != nil {
		writeRepoError(w, err, "Umbrellas")
		return
	}
	respondList(w, r, umbrellas, table.MatchUmbrella)
}

func (h *UmbrellaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Umbrella")
	if !ok {
		return
	}
	umbrella, err := h.umbrellaSvc.GetUmbrella(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "Umbrella")
		return
	}
	writeJSON(w, http.StatusOK, umbrella)
}

func (h *UmbrellaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var umbrella domain.Umbrella
	if !decodeBody(w, r, &umbrella) {
		return
	}
	if err := h.umbrellaSvc.CreateUmbrella(r.Context(), &umbrella); err != nil {
		writeRepoError(w, err, "Umbrella")
		return
	}
	metrics.RowsCreated.WithLabelValues("umbrella").Inc()
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":               umbrella.UmbrellaID,
		"Size":             umbrella.Size,
		"Color":            umbrella.Color,
		"CurrentStationID": umbrella.CurrentStationID,
	})
}

func (h *UmbrellaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Umbrella")
	if !ok {
		return
	}
	var umbrella domain.Umbrella
	if !decodeBody(w, r, &umbrella) {
		return
	}
	umbrella.UmbrellaID = id
	if err := h.umbrellaSvc.UpdateUmbrella(r.Context(), &umbrella); err != nil {
		writeRepoError(w, err, "Umbrella")
		return
	}
	metrics.RowsUpdated.WithLabelValues("umbrella").Inc()
	writeMessage(w, http.StatusOK, "Umbrella updated successfully")
}

func (h *UmbrellaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Umbrella")
	if !ok {
		return
	}
	if err := h.umbrellaSvc.DeleteUmbrella(r.Context(), id); err != nil {
		writeRepoError(w, err, "Umbrella")
		return
	}
	metrics.RowsDeleted.WithLabelValues("umbrella").Inc()
	writeMessage(w, http.StatusOK, "Umbrella deleted successfully")
}
