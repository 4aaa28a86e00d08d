package app

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/ferdiebergado/gopherkit/http/response"
)

type opsResponse struct {
	Status string            `json:"status"`
	Deps   map[string]string `json:"deps,omitempty"`
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, &opsResponse{Status: "ok"})
}

// handleReady reports whether the service can reach its dependencies.
func handleReady(dbConn *sql.DB, pingTimeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := dbConn.PingContext(ctx); err != nil {
			slog.Error("database is not reachable", "reason", err)
			response.JSON(w, http.StatusServiceUnavailable, &opsResponse{
				Status: "unavailable",
				Deps:   map[string]string{"database": "down"},
			})
			return
		}

		response.JSON(w, http.StatusOK, &opsResponse{
			Status: "ready",
			Deps:   map[string]string{"database": "up"},
		})
	}
}
