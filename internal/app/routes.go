package app

import (
	"database/sql"
	"net/http"

	"github.com/ferdiebergado/notesvc/internal/config"
	"github.com/ferdiebergado/notesvc/internal/middleware"
	"github.com/ferdiebergado/notesvc/internal/note"
	"github.com/ferdiebergado/notesvc/internal/platform/router"
	"github.com/ferdiebergado/notesvc/internal/platform/validation"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func mountNoteRoutes(r router.Router, handler *note.Handler, validator validation.Validator, maxBodySize int64) {
	r.Get("/api/notes", handler.ListNotes)
	r.Post("/api/notes", handler.CreateNote,
		middleware.DecodePayload[note.CreateNoteRequest](maxBodySize),
		middleware.ValidateInput[note.CreateNoteRequest](validator))
	r.Put("/api/notes/{note_id}", handler.UpdateNote,
		middleware.DecodePayload[note.UpdateNoteRequest](maxBodySize),
		middleware.ValidateInput[note.UpdateNoteRequest](validator))
	r.Delete("/api/notes/{note_id}", handler.DeleteNote)

	// Preflight requests are answered by the CORS middleware; the routes
	// only have to exist so the chain runs for OPTIONS.
	r.Options("/api/notes", handlePreflight)
	r.Options("/api/notes/{note_id}", handlePreflight)
}

func mountOpsRoutes(r router.Router, dbConn *sql.DB, cfg *config.Config) {
	r.Get("/health", handleHealth)
	r.Get("/ready", handleReady(dbConn, cfg.DB.PingTimeout.Duration))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

func handlePreflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
