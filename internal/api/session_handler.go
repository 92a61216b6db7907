package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/quadflash/backend/internal/domain/question"
	"github.com/quadflash/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type SessionResponse struct {
	Mode     string          `json:"mode" example:"practice"`
	Tab      string          `json:"tab" example:"all"`
	IsSaving bool            `json:"is_saving" example:"false"`
	Unsaved  bool            `json:"unsaved" example:"false"`
	Total    int             `json:"total" example:"5"`
	Counts   question.Counts `json:"counts"`
	SavedAt  *time.Time      `json:"saved_at,omitempty"`
}

type SetTabRequest struct {
	Tab string `json:"tab" example:"doubt"`
}

func (r *SetTabRequest) Validate() error {
	if r.Tab == "" {
		return errors.New("tab is required")
	}
	if _, err := question.ParseTab(r.Tab); err != nil {
		return err
	}
	return nil
}

type ResetResponse struct {
	Reset   bool            `json:"reset" example:"true"`
	Session SessionResponse `json:"session"`
}

func toSessionResponse(st service.SessionState) SessionResponse {
	return SessionResponse{
		Mode:     string(st.Mode),
		Tab:      string(st.Tab),
		IsSaving: st.IsSaving,
		Unsaved:  st.Unsaved,
		Total:    st.Counts.All,
		Counts:   st.Counts,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSession returns the top-level session state.
// @Summary      Get session state
// @Description  View mode, active tab, saving indicators and per-tab counts.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Router       /session [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	resp := toSessionResponse(h.session.State())
	if at, ok := h.session.SavedAt(r.Context()); ok {
		resp.SavedAt = &at
	}
	respondJSON(w, http.StatusOK, resp)
}

// setFilterTab switches the practice view's filter tab.
// @Summary      Set filter tab
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      SetTabRequest  true  "Tab to show"
// @Success      200   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "no question set loaded"
// @Router       /session/tab [put]
func (h *Handler) setFilterTab(w http.ResponseWriter, r *http.Request) {
	var req SetTabRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if h.handleServiceError(w, h.session.SetFilterTab(question.Tab(req.Tab))) {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(h.session.State()))
}

// reset clears the question set and storage.
// @Summary      Reset and re-upload
// @Description  Clears storage and returns to input mode. Only confirm=true counts as a yes to the confirmation prompt.
// @Tags         Session
// @Produce      json
// @Param        confirm  query     bool  false  "Answer to the confirmation prompt"
// @Success      200      {object}  ResetResponse
// @Failure      409      {object}  map[string]string  "save in progress"
// @Router       /reset [post]
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	confirmed := r.URL.Query().Get("confirm") == "true"

	done, err := h.session.Reset(r.Context(), service.ConfirmFunc(func(string) bool {
		return confirmed
	}))
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, ResetResponse{
		Reset:   done,
		Session: toSessionResponse(h.session.State()),
	})
}
