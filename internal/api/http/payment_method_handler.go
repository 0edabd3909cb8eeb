package http

import (
	"net/http"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/metrics"
	"umbrella-fleet-backend/internal/service"
	"umbrella-fleet-backend/internal/table"

	"github.com/gorilla/mux"
)

type PaymentMethodHandler struct {
	paymentSvc service.PaymentMethodService
}

func NewPaymentMethodHandler(paymentSvc service.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{paymentSvc: paymentSvc}
}

// Register wires the payment routes. There is deliberately no PUT: stored
// cards are created and deleted, never edited.
func (h *PaymentMethodHandler) Register(r *mux.Router) {
	r.HandleFunc("/payments", h.List).Methods(http.MethodGet)
	r.HandleFunc("/payments", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/payments/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/payments/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/cardIDs", h.ListCardIDs).Methods(http.MethodGet)
}

func (h *PaymentMethodHandler) List(w http.ResponseWriter, r *http.Request) {
	methods, err := h.paymentSvc.ListPaymentMethods(r.Context())
	if err != nil {
		writeRepoError(w, err, "Payment methods")
		return
	}
	respondList(w, r, methods, table.MatchPaymentMethod)
}

// ListCardIDs returns the bare key list backing the account form's card picker.
func (h *PaymentMethodHandler) ListCardIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := h.paymentSvc.ListCardIDs(r.Context())
	if err != nil {
		writeRepoError(w, err, "CardIDs")
		return
	}
	if ids == nil {
		ids = []int32{}
	}
	writeJSON(w, http.StatusOK, ids)
}

func (h *PaymentMethodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Payment method")
	if !ok {
		return
	}
	method, err := h.paymentSvc.GetPaymentMethod(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "Payment method")
		return
	}
	writeJSON(w, http.StatusOK, method)
}

func (h *PaymentMethodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var method domain.PaymentMethod
	if !decodeBody(w, r, &method) {
		return
	}
	if err := h.paymentSvc.CreatePaymentMethod(r.Context(), &method); err != nil {
		writeRepoError(w, err, "Payment method")
		return
	}
	metrics.RowsCreated.WithLabelValues("payment_method").Inc()
	writeJSON(w, http.StatusCreated, method)
}

func (h *PaymentMethodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Payment method")
	if !ok {
		return
	}
	if err := h.paymentSvc.DeletePaymentMethod(r.Context(), id); err != nil {
		writeRepoError(w, err, "Payment method")
		return
	}
	metrics.RowsDeleted.WithLabelValues("payment_method").Inc()
	writeMessage(w, http.StatusOK, "Payment method deleted successfully")
}
