// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Session
	mux.HandleFunc("GET /session", h.getSession)
	mux.HandleFunc("PUT /session/tab", h.setFilterTab)
	mux.HandleFunc("POST /reset", h.reset)

	// Ingestion
	mux.HandleFunc("POST /ingest", h.ingestText)
	mux.HandleFunc("POST /ingest/file", h.ingestFile)
	mux.HandleFunc("POST /ingest/drop", h.ingestDrop)
	mux.HandleFunc("POST /ingest/sample", h.ingestSample)

	// Cards
	mux.HandleFunc("GET /cards", h.listCards)
	mux.HandleFunc("GET /cards/{index}", h.getCard)
	mux.HandleFunc("POST /cards/{index}/select", h.selectOption)
	mux.HandleFunc("POST /cards/{index}/reveal", h.toggleReveal)

	// Questions
	mux.HandleFunc("POST /questions/{index}/flags/{kind}", h.toggleFlag)
	mux.HandleFunc("PUT /questions/{index}/note", h.updateNote)

	// Export
	mux.HandleFunc("GET /export", h.exportQuestions)
}
