package api

import (
	"errors"
	"net/http"

	"github.com/quadflash/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type OptionResponse struct {
	Text string `json:"text" example:"PUT"`
	Mark string `json:"mark,omitempty" example:"correct"`
}

type CardResponse struct {
	Index       int              `json:"index" example:"0"`
	Question    string           `json:"question" example:"Which HTTP method is idempotent?"`
	Options     []OptionResponse `json:"options"`
	State       string           `json:"state" example:"unanswered"`
	Revealed    bool             `json:"revealed" example:"false"`
	Selected    *string          `json:"selected,omitempty"`
	Answer      *string          `json:"answer,omitempty"`
	IsDoubt     bool             `json:"is_doubt" example:"false"`
	IsImportant bool             `json:"is_important" example:"false"`
	Note        string           `json:"note,omitempty"`
	NoteHTML    string           `json:"note_html,omitempty"`
}

type ListCardsResponse struct {
	Tab   string         `json:"tab" example:"all"`
	Cards []CardResponse `json:"cards"`
}

type SelectOptionRequest struct {
	Option *string `json:"option" example:"PUT"`
}

func (r *SelectOptionRequest) Validate() error {
	if r.Option == nil {
		return errors.New("option is required")
	}
	return nil
}

func (h *Handler) toCardResponse(s service.CardSnapshot) CardResponse {
	options := make([]OptionResponse, len(s.View.Options))
	for i, o := range s.View.Options {
		options[i] = OptionResponse{Text: o.Text, Mark: string(o.Mark)}
	}
	return CardResponse{
		Index:       s.Index,
		Question:    s.Question.Question,
		Options:     options,
		State:       string(s.View.State),
		Revealed:    s.View.Revealed,
		Selected:    s.View.Selected,
		Answer:      s.View.Answer,
		IsDoubt:     s.Question.IsDoubt,
		IsImportant: s.Question.IsImportant,
		Note:        s.Question.Note,
		NoteHTML:    h.noteHTML(s.Question.Note),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listCards returns the cards visible under the active tab.
// @Summary      List visible cards
// @Description  Cards keep the index of their record in the full list, so mutations from a filtered view hit the right record.
// @Tags         Cards
// @Produce      json
// @Success      200  {object}  ListCardsResponse
// @Router       /cards [get]
func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	visible := h.session.Visible()
	cards := make([]CardResponse, len(visible))
	for i, s := range visible {
		cards[i] = h.toCardResponse(s)
	}

	respondJSON(w, http.StatusOK, ListCardsResponse{
		Tab:   string(h.session.State().Tab),
		Cards: cards,
	})
}

// getCard returns one card by its record index.
// @Summary      Get a card
// @Tags         Cards
// @Produce      json
// @Param        index  path      int  true  "Record index"
// @Success      200    {object}  CardResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /cards/{index} [get]
func (h *Handler) getCard(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	snap, err := h.session.Card(index)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.toCardResponse(snap))
}

// selectOption checks an option against the answer.
// @Summary      Select an option
// @Description  Ignored while the answer is revealed.
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        index  path      int                  true  "Record index"
// @Param        body   body      SelectOptionRequest  true  "Chosen option"
// @Success      200    {object}  CardResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /cards/{index}/select [post]
func (h *Handler) selectOption(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}
	var req SelectOptionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	snap, err := h.session.SelectOption(index, *req.Option)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.toCardResponse(snap))
}

// toggleReveal shows or hides the answer.
// @Summary      Toggle answer reveal
// @Tags         Cards
// @Produce      json
// @Param        index  path      int  true  "Record index"
// @Success      200    {object}  CardResponse
// @Failure      404    {object}  map[string]string
// @Router       /cards/{index}/reveal [post]
func (h *Handler) toggleReveal(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	snap, err := h.session.ToggleReveal(index)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.toCardResponse(snap))
}
