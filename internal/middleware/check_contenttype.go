package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/notesvc/internal/pkg/message"
	"github.com/ferdiebergado/notesvc/internal/pkg/web"
)

// CheckContentType rejects requests that carry a body without declaring it
// as JSON. Methods without a request body pass through untouched.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			next.ServeHTTP(w, r)
			return
		}

		slog.Info("Checking Content-Type...")
		contentType := r.Header.Get(web.HeaderContentType)

		if contentType != web.MimeJSON {
			web.Fail(w, http.StatusUnsupportedMediaType, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput, nil)
			return
		}

		slog.Info("Content-Type is valid.")
		next.ServeHTTP(w, r)
	})
}
