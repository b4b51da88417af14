package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"calckit/internal/domain"
)

// maxBody bounds API request bodies.
const maxBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, field string) {
	writeJSON(w, status, domain.APIError{Error: msg, Field: field})
}

// fail maps a service error onto an API status.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusUnprocessableEntity, ve.Err.Error(), ve.Field)
	case errors.Is(err, domain.ErrUnknownCalculator):
		writeError(w, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrHistoryDisabled):
		writeError(w, http.StatusConflict, err.Error(), "")
	default:
		s.logger.ErrorContext(r.Context(), "api request failed", "path", r.URL.Path, "err", err)
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), "")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body: "+err.Error(), "")
		return false
	}
	return true
}

func (s *Server) apiList(w http.ResponseWriter, r *http.Request) {
	cat := domain.Category(r.URL.Query().Get("category"))
	if cat != "" && !cat.Valid() {
		writeError(w, http.StatusBadRequest, "unknown category "+strconv.Quote(string(cat)), "")
		return
	}
	list, err := s.calcs.List(r.Context(), cat)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) apiDescribe(w http.ResponseWriter, r *http.Request) {
	calc, err := s.calcs.Describe(r.Context(), domain.Slug(chi.URLParam(r, "slug")))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, calc)
}

func (s *Server) apiRun(w http.ResponseWriter, r *http.Request) {
	var req domain.RunRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.calcs.Run(r.Context(), domain.Slug(chi.URLParam(r, "slug")), req.Inputs)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) apiHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.fail(w, r, domain.ErrHistoryDisabled)
		return
	}
	f := domain.HistoryFilter{Slug: domain.Slug(r.URL.Query().Get("slug"))}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer", "")
			return
		}
		f.Limit = n
	}
	entries, err := s.history.History(r.Context(), f)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// apiRecord recomputes the calculation and saves it.
func (s *Server) apiRecord(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.fail(w, r, domain.ErrHistoryDisabled)
		return
	}
	var req domain.RecordRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.calcs.Run(r.Context(), req.Slug, req.Inputs)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	entry, err := s.history.Record(r.Context(), req.Slug, req.Inputs, res)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) apiClearHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.fail(w, r, domain.ErrHistoryDisabled)
		return
	}
	if err := s.history.ClearHistory(r.Context()); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
