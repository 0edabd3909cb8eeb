package http

import (
	"net/http"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/metrics"
	"umbrella-fleet-backend/internal/service"
	"umbrella-fleet-backend/internal/table"

	"github.com/gorilla/mux"
)

type AccountHandler struct {
	accountSvc service.AccountService
}

func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

func (h *AccountHandler) Register(r *mux.Router) {
	r.HandleFunc("/accounts", h.List).Methods(http.MethodGet)
	r.HandleFunc("/accounts", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/accounts/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/accounts/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountSvc.ListAccounts(r.Context())
	if err != nil {
		writeRepoError(w, err, "Accounts")
		return
	}
	respondList(w, r, accounts, table.MatchAccount)
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Account")
	if !ok {
		return
	}
	account, err := h.accountSvc.GetAccount(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "Account")
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var account domain.Account
	if !decodeBody(w, r, &account) {
		return
	}
	if err := h.accountSvc.CreateAccount(r.Context(), &account); err != nil {
		writeRepoError(w, err, "Account")
		return
	}
	metrics.RowsCreated.WithLabelValues("account").Inc()
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "New account added",
		"accountId": account.AccountID,
	})
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Account")
	if !ok {
		return
	}
	var account domain.Account
	if !decodeBody(w, r, &account) {
		return
	}
	account.AccountID = id
	if err := h.accountSvc.UpdateAccount(r.Context(), &account); err != nil {
		writeRepoError(w, err, "Account")
		return
	}
	metrics.RowsUpdated.WithLabelValues("account").Inc()
	writeMessage(w, http.StatusOK, "Account updated successfully")
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Account")
	if !ok {
		return
	}
	if err := h.accountSvc.DeleteAccount(r.Context(), id); err != nil {
		writeRepoError(w, err, "Account")
		return
	}
	metrics.RowsDeleted.WithLabelValues("account").Inc()
	writeMessage(w, http.StatusOK, "Account deleted successfully")
}
