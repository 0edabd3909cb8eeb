package http

import (
	"net/http"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/metrics"
	"umbrella-fleet-backend/internal/service"
	"umbrella-fleet-backend/internal/table"

	"github.com/gorilla/mux"
)

type MaintainerHandler struct {
	maintainerSvc service.MaintainerService
}

func NewMaintainerHandler(maintainerSvc service.MaintainerService) *MaintainerHandler {
	return &MaintainerHandler{maintainerSvc: maintainerSvc}
}

func (h *MaintainerHandler) Register(r *mux.Router) {
	r.HandleFunc("/maintainers", h.List).Methods(http.MethodGet)
	r.HandleFunc("/maintainers", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/maintainers/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/maintainers/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/maintainers/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *MaintainerHandler) List(w http.ResponseWriter, r *http.Request) {
	maintainers, err := h.maintainerSvc.ListMaintainers(r.Context())
	if err != nil {
		writeRepoError(w, err, "Maintainers")
		return
	}
	respondList(w, r, maintainers, table.MatchMaintainer)
}

func (h *MaintainerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Maintainer")
	if !ok {
		return
	}
	maintainer, err := h.maintainerSvc.GetMaintainer(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "Maintainer")
		return
	}
	writeJSON(w, http.StatusOK, maintainer)
}

func (h *MaintainerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var maintainer domain.Maintainer
	if !decodeBody(w, r, &maintainer) {
		return
	}
	if err := h.maintainerSvc.CreateMaintainer(r.Context(), &maintainer); err != nil {
		writeRepoError(w, err, "Maintainer")
		return
	}
	metrics.RowsCreated.WithLabelValues("maintainer").Inc()
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "New maintainer added",
		"maintainerId": maintainer.MaintainerID,
	})
}

func (h *MaintainerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Maintainer")
	if !ok {
		return
	}
	var maintainer domain.Maintainer
	if !decodeBody(w, r, &maintainer) {
		return
	}
	maintainer.MaintainerID = id
	if err := h.maintainerSvc.UpdateMaintainer(r.Context(), &maintainer); err != nil {
		writeRepoError(w, err, "Maintainer")
		return
	}
	metrics.RowsUpdated.WithLabelValues("maintainer").Inc()
	writeMessage(w, http.StatusOK, "Maintainer updated successfully")
}

func (h *MaintainerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Maintainer")
	if !ok {
		return
	}
	if err := h.maintainerSvc.DeleteMaintainer(r.Context(), id); err != nil {
		writeRepoError(w, err, "Maintainer")
		return
	}
	metrics.RowsDeleted.WithLabelValues("maintainer").Inc()
	writeMessage(w, http.StatusOK, "Maintainer deleted successfully")
}
