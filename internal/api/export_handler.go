package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ── Handlers ────────────────────────────────────────────────────────────────

// exportQuestions downloads the current list, annotations included, in the
// same format the ingestion screen accepts.
// @Summary      Export questions
// @Tags         Export
// @Produce      json
// @Success      200  {array}   object
// @Failure      409  {object}  map[string]string  "no question set loaded"
// @Router       /export [get]
func (h *Handler) exportQuestions(w http.ResponseWriter, r *http.Request) {
	questions := h.session.Questions()
	if questions == nil {
		respondError(w, http.StatusConflict, "no question set is loaded")
		return
	}

	data, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		h.logger.Error("failed to encode export", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to export questions")
		return
	}

	filename := fmt.Sprintf("quadflash-%s.json", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
