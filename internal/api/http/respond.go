package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"umbrella-fleet-backend/internal/logger"
	"umbrella-fleet-backend/internal/repository"
	"umbrella-fleet-backend/internal/table"

	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeRepoError maps a repository failure onto the wire: ErrNotFound is a
// normal 404 outcome, anything else is logged and surfaced as a generic 500.
func writeRepoError(w http.ResponseWriter, err error, entity string) {
	if errors.Is(err, repository.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, entity+" not found")
		return
	}
	logger.QueryFailed(entity, err)
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}

// decodeBody reads a JSON request body. Decoding failures are not a distinct
// validation outcome; they surface through the same generic 500 path as any
// store error.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Warn("failed to decode request body", "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return false
	}
	return true
}

// pathID extracts the numeric key from the route. A non-numeric id cannot
// match any row, so it is reported as not found.
func pathID(w http.ResponseWriter, r *http.Request, entity string) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeMessage(w, http.StatusNotFound, entity+" not found")
		return 0, false
	}
	return int32(id), true
}

// pagedResponse wraps one page of a filtered list.
type pagedResponse[T any] struct {
	Items     []T    `json:"items"`
	Page      int    `json:"page"`
	PageCount int    `json:"pageCount"`
	Total     int    `json:"total"`
	From      int    `json:"from"`
	To        int    `json:"to"`
	Summary   string `json:"summary"`
}

// respondList writes a list response. Without query parameters the full set
// goes out as a plain array, preserving the fetch-everything contract; with
// q or page present the rows are filtered and paged server-side.
func respondList[T any](w http.ResponseWriter, r *http.Request, rows []T, match table.MatchFunc[T]) {
	if rows == nil {
		rows = []T{}
	}
	q := r.URL.Query()
	if !q.Has("q") && !q.Has("page") {
		writeJSON(w, http.StatusOK, rows)
		return
	}

	page := 1
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		page = n
	}
	result := table.New(rows, match).Page(q.Get("q"), page)
	writeJSON(w, http.StatusOK, pagedResponse[T]{
		Items:     result.Items,
		Page:      result.Number,
		PageCount: result.PageCount,
		Total:     result.Total,
		From:      result.From,
		To:        result.To,
		Summary:   result.Summary(),
	})
}
