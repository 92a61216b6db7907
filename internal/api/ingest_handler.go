package api

import (
	"errors"
	"io"
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type IngestResponse struct {
	Session  SessionResponse `json:"session"`
	Warnings []string        `json:"warnings,omitempty"`
}

// DropRequest carries a file the client parsed after it was dropped.
type DropRequest struct {
	Name string `json:"name" example:"questions.json"`
	Data any    `json:"data" swaggertype:"object"`
}

func (r *DropRequest) Validate() error {
	if r.Data == nil {
		return errors.New("data is required")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// ingestText loads a question set pasted as raw JSON.
// @Summary      Load pasted JSON
// @Description  The body is either an array of question objects or a single question object.
// @Tags         Ingestion
// @Accept       json
// @Produce      json
// @Success      201  {object}  IngestResponse
// @Failure      400  {object}  map[string]string  "malformed input or invalid shape"
// @Failure      409  {object}  map[string]string  "save in progress"
// @Router       /ingest [post]
func (h *Handler) ingestText(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "question set too large")
		return
	}
	h.ingestRaw(w, r, raw)
}

// ingestFile loads a question set from an uploaded .json file.
// @Summary      Upload a JSON file
// @Tags         Ingestion
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "JSON file"
// @Success      201   {object}  IngestResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "save in progress"
// @Router       /ingest/file [post]
func (h *Handler) ingestFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
		respondError(w, http.StatusBadRequest, "expected a multipart upload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read file")
		return
	}
	h.ingestRaw(w, r, raw)
}

// ingestDrop loads a question set that was dropped and parsed client-side.
// @Summary      Load a dropped file
// @Description  data is the parsed file: an array of question objects or a single question object.
// @Tags         Ingestion
// @Accept       json
// @Produce      json
// @Param        body  body      DropRequest  true  "Dropped file"
// @Success      201   {object}  IngestResponse
// @Failure      400   {object}  map[string]string  "invalid shape"
// @Failure      409   {object}  map[string]string  "save in progress"
// @Router       /ingest/drop [post]
func (h *Handler) ingestDrop(w http.ResponseWriter, r *http.Request) {
	var req DropRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.session.IngestValue(r.Context(), req.Data)
	if h.handleServiceError(w, err) {
		return
	}
	h.logger.Info("dropped file loaded", "name", req.Name, "count", len(res.Questions))
	respondJSON(w, http.StatusCreated, IngestResponse{
		Session:  toSessionResponse(h.session.State()),
		Warnings: res.Warnings,
	})
}

// ingestSample loads the bundled demo set.
// @Summary      Load sample data
// @Tags         Ingestion
// @Produce      json
// @Success      201  {object}  IngestResponse
// @Failure      409  {object}  map[string]string  "save in progress"
// @Router       /ingest/sample [post]
func (h *Handler) ingestSample(w http.ResponseWriter, r *http.Request) {
	if h.handleServiceError(w, h.session.IngestSample(r.Context())) {
		return
	}
	respondJSON(w, http.StatusCreated, IngestResponse{
		Session: toSessionResponse(h.session.State()),
	})
}

func (h *Handler) ingestRaw(w http.ResponseWriter, r *http.Request, raw []byte) {
	res, err := h.session.IngestRaw(r.Context(), raw)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, IngestResponse{
		Session:  toSessionResponse(h.session.State()),
		Warnings: res.Warnings,
	})
}
