// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/microcosm-cc/bluemonday"

	"github.com/quadflash/backend/internal/domain/card"
	"github.com/quadflash/backend/internal/domain/question"
	"github.com/quadflash/backend/internal/ingest"
	"github.com/quadflash/backend/internal/service"
)

// maxBodyBytes caps pasted and uploaded question sets.
const maxBodyBytes = 10 << 20

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	session *service.SessionController
	logger  *slog.Logger
	notes   *bluemonday.Policy // renders note_html; stored notes are never touched
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(session *service.SessionController, logger *slog.Logger) *Handler {
	return &Handler{
		session: session,
		logger:  logger,
		notes:   bluemonday.UGCPolicy(),
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes {"error": msg}.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

type validator interface {
	Validate() error
}

// decodeAndValidate decodes the JSON body into v and runs its Validate.
// Returns false after writing a 400 if either step fails.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// noteHTML returns note as markup that is safe to embed in a page.
func (h *Handler) noteHTML(note string) string {
	if note == "" {
		return ""
	}
	return h.notes.Sanitize(note)
}

// pathIndex parses the {index} path segment. Returns false after writing a
// 400 if it is not an integer.
func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "index must be an integer")
		return 0, false
	}
	return index, true
}

// handleServiceError maps domain errors to HTTP responses. Returns true if
// an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, service.ErrIndexOutOfRange):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSaveInProgress),
		errors.Is(err, service.ErrNotPracticing):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ingest.ErrEmptyInput),
		errors.Is(err, ingest.ErrMalformed),
		errors.Is(err, ingest.ErrInvalidShape),
		errors.Is(err, card.ErrUnknownOption),
		errors.Is(err, question.ErrUnknownTab),
		errors.Is(err, question.ErrUnknownFlag):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("service error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
