package note

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ferdiebergado/gopherkit/http/response"
	"github.com/ferdiebergado/notesvc/internal/pkg/message"
	"github.com/ferdiebergado/notesvc/internal/pkg/web"
)

type NoteService interface {
	CreateNote(ctx context.Context, text string) (Note, error)
	ListNotes(ctx context.Context) ([]Note, error)
	UpdateNote(ctx context.Context, noteID int64, text string) (Note, error)
	DeleteNote(ctx context.Context, noteID int64) error
}

type Handler struct {
	svc NoteService
}

func NewHandler(svc NoteService) *Handler {
	return &Handler{svc: svc}
}

type CreateNoteRequest struct {
	Text string `json:"text" validate:"max=10000"`
}

type UpdateNoteRequest struct {
	Text string `json:"text" validate:"max=10000"`
}

type noteData struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DeleteNoteResponse struct {
	Deleted bool  `json:"deleted"`
	ID      int64 `json:"id"`
}

func transformNote(n Note) noteData {
	return noteData{
		ID:        n.ID,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func noteIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("note_id"), 10, 64)
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]noteData, 0, len(notes))
	for _, n := range notes {
		data = append(data, transformNote(n))
	}
	response.JSON(w, http.StatusOK, data)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[CreateNoteRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	n, err := h.svc.CreateNote(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyText) {
			web.RespondBadRequest(w, err, MsgEmptyText, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, transformNote(n))
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := noteIDFromPath(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	req, err := web.ParamsFromContext[UpdateNoteRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	n, err := h.svc.UpdateNote(r.Context(), noteID, req.Text)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, MsgNoteNotFound, nil)
			return
		}

		if errors.Is(err, ErrEmptyText) {
			web.RespondBadRequest(w, err, MsgEmptyText, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, transformNote(n))
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := noteIDFromPath(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.DeleteNote(r.Context(), noteID); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, MsgNoteNotFound, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, &DeleteNoteResponse{Deleted: true, ID: noteID})
}
