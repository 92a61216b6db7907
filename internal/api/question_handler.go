package api

import (
	"errors"
	"net/http"

	"github.com/quadflash/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type UpdateNoteRequest struct {
	Note *string `json:"note" example:"useState<T> returns a tuple"`
}

func (r *UpdateNoteRequest) Validate() error {
	if r.Note == nil {
		return errors.New("note is required")
	}
	return nil
}

type QuestionResponse struct {
	Index       int      `json:"index"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	IsDoubt     bool     `json:"is_doubt"`
	IsImportant bool     `json:"is_important"`
	Note        string   `json:"note,omitempty"`
	NoteHTML    string   `json:"note_html,omitempty"`
}

func (h *Handler) toQuestionResponse(index int, q question.Question) QuestionResponse {
	return QuestionResponse{
		Index:       index,
		Question:    q.Question,
		Options:     q.Options,
		Answer:      q.Answer,
		IsDoubt:     q.IsDoubt,
		IsImportant: q.IsImportant,
		Note:        q.Note,
		NoteHTML:    h.noteHTML(q.Note),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// toggleFlag flips the doubt or important flag on a record.
// @Summary      Toggle a flag
// @Description  Saved in the background; the card keeps its selection and reveal.
// @Tags         Questions
// @Produce      json
// @Param        index  path      int     true  "Record index"
// @Param        kind   path      string  true  "Flag"  Enums(doubt, important)
// @Success      200    {object}  QuestionResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /questions/{index}/flags/{kind} [post]
func (h *Handler) toggleFlag(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}
	flag, err := question.ParseFlag(r.PathValue("kind"))
	if h.handleServiceError(w, err) {
		return
	}

	q, err := h.session.ToggleFlag(index, flag)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.toQuestionResponse(index, q))
}

// updateNote replaces the note on a record. The text is stored as given.
// @Summary      Update a note
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        index  path      int                true  "Record index"
// @Param        body   body      UpdateNoteRequest  true  "Note text"
// @Success      200    {object}  QuestionResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /questions/{index}/note [put]
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}
	var req UpdateNoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := h.session.UpdateNote(index, *req.Note)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.toQuestionResponse(index, q))
}
