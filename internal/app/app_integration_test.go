//go:build integration

package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/notesvc/internal/app"
	"github.com/ferdiebergado/notesvc/internal/config"
	"github.com/ferdiebergado/notesvc/internal/middleware"
	"github.com/ferdiebergado/notesvc/internal/note"
	"github.com/ferdiebergado/notesvc/internal/pkg/web"
	"github.com/ferdiebergado/notesvc/internal/platform/db"
	"github.com/ferdiebergado/notesvc/internal/platform/router"
	"github.com/ferdiebergado/notesvc/internal/platform/validation"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func setupApp(t *testing.T) (api *app.App, baseURL string) {
	t.Helper()

	if err := env.Load("../../.env.testing"); err != nil {
		t.Fatalf("load env: %v", err)
	}

	cfg, err := config.Load("../../config.json")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	conn, err := db.NewPostgresDB(context.Background(), cfg.DB)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})

	if err := note.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	provider := &app.Provider{
		DB:        conn,
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
		TxMgr:     db.NewSQLTxManager(conn),
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.Metrics,
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.CheckContentType,
	}

	api = app.New(cfg, provider, middlewares)
	return api, fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
}

func doJSON(t *testing.T, client *http.Client, method, url string, payload []byte) (int, []byte) {
	t.Helper()

	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, body)
	if err != nil {
		t.Fatalf("new http request: %v", err)
	}
	if payload != nil {
		req.Header.Set(web.HeaderContentType, web.MimeJSON)
	}

	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return res.StatusCode, resBody
}

func TestIntegrationApp_NoteCRUD(t *testing.T) {
	api, baseURL := setupApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := api.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("server error: %v", err)
		}
	}()

	// Wait briefly for the server to start.
	time.Sleep(300 * time.Millisecond)

	t.Cleanup(func() {
		if err := api.Shutdown(); err != nil {
			t.Errorf("failed to shutdown app: %v", err)
		}
	})

	client := &http.Client{Timeout: 5 * time.Second}

	code, _ := doJSON(t, client, http.MethodGet, baseURL+"/health", nil)
	if code != http.StatusOK {
		t.Fatalf("GET /health = %d, want: %d", code, http.StatusOK)
	}

	code, _ = doJSON(t, client, http.MethodGet, baseURL+"/ready", nil)
	if code != http.StatusOK {
		t.Fatalf("GET /ready = %d, want: %d", code, http.StatusOK)
	}

	type noteBody struct {
		ID        int64     `json:"id"`
		Text      string    `json:"text"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	// Create trims the surrounding whitespace.
	code, body := doJSON(t, client, http.MethodPost, baseURL+"/api/notes", []byte(`{"text": "  integration test note  "}`))
	if code != http.StatusOK {
		t.Fatalf("POST /api/notes = %d, want: %d, body: %s", code, http.StatusOK, body)
	}

	var created noteBody
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode created note: %v", err)
	}

	if created.ID <= 0 {
		t.Errorf("created.ID = %d, want a positive id", created.ID)
	}

	if want := "integration test note"; created.Text != want {
		t.Errorf("created.Text = %q, want: %q", created.Text, want)
	}

	// Creating with blank text fails.
	code, body = doJSON(t, client, http.MethodPost, baseURL+"/api/notes", []byte(`{"text": "   "}`))
	if code != http.StatusBadRequest {
		t.Fatalf("POST /api/notes with blank text = %d, want: %d, body: %s", code, http.StatusBadRequest, body)
	}

	// The new note appears first in the listing.
	code, body = doJSON(t, client, http.MethodGet, baseURL+"/api/notes", nil)
	if code != http.StatusOK {
		t.Fatalf("GET /api/notes = %d, want: %d, body: %s", code, http.StatusOK, body)
	}

	var listed []noteBody
	if err := json.Unmarshal(body, &listed); err != nil {
		t.Fatalf("decode note list: %v", err)
	}

	if len(listed) == 0 || listed[0].ID != created.ID {
		t.Errorf("GET /api/notes did not list note %d first: %+v", created.ID, listed)
	}

	// Update replaces the text.
	noteURL := fmt.Sprintf("%s/api/notes/%d", baseURL, created.ID)
	code, body = doJSON(t, client, http.MethodPut, noteURL, []byte(`{"text": "updated note"}`))
	if code != http.StatusOK {
		t.Fatalf("PUT %s = %d, want: %d, body: %s", noteURL, code, http.StatusOK, body)
	}

	var updated noteBody
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("decode updated note: %v", err)
	}

	if want := "updated note"; updated.Text != want {
		t.Errorf("updated.Text = %q, want: %q", updated.Text, want)
	}

	// Updating a missing note reports not found.
	missingURL := fmt.Sprintf("%s/api/notes/%d", baseURL, created.ID+999999)
	code, body = doJSON(t, client, http.MethodPut, missingURL, []byte(`{"text": "whatever"}`))
	if code != http.StatusNotFound {
		t.Fatalf("PUT %s = %d, want: %d, body: %s", missingURL, code, http.StatusNotFound, body)
	}

	// Delete confirms the removed id.
	code, body = doJSON(t, client, http.MethodDelete, noteURL, nil)
	if code != http.StatusOK {
		t.Fatalf("DELETE %s = %d, want: %d, body: %s", noteURL, code, http.StatusOK, body)
	}

	var deleted note.DeleteNoteResponse
	if err := json.Unmarshal(body, &deleted); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}

	if !deleted.Deleted || deleted.ID != created.ID {
		t.Errorf("DELETE %s = %+v, want deleted %d", noteURL, deleted, created.ID)
	}

	// Deleting twice reports not found.
	code, body = doJSON(t, client, http.MethodDelete, noteURL, nil)
	if code != http.StatusNotFound {
		t.Fatalf("DELETE %s again = %d, want: %d, body: %s", noteURL, code, http.StatusNotFound, body)
	}
}
