package note

import (
	"context"
	"errors"
	"strings"

	"github.com/ferdiebergado/notesvc/internal/platform/db"
)

var _ NoteService = (*Service)(nil)

// ErrEmptyText is returned when a note is created or updated with text that
// is empty after trimming whitespace.
var ErrEmptyText = errors.New("note service: text cannot be empty")

type NoteRepository interface {
	CreateNote(ctx context.Context, text string) (Note, error)
	ListNotes(ctx context.Context) ([]Note, error)
	FindNote(ctx context.Context, noteID int64) (Note, error)
	UpdateNote(ctx context.Context, noteID int64, text string) (Note, error)
	DeleteNote(ctx context.Context, noteID int64) error
}

type Service struct {
	repo  NoteRepository
	txMgr db.TxManager
}

func NewService(repo NoteRepository, txMgr db.TxManager) *Service {
	return &Service{
		repo:  repo,
		txMgr: txMgr,
	}
}

func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	return s.repo.ListNotes(ctx)
}

func (s *Service) CreateNote(ctx context.Context, text string) (Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, ErrEmptyText
	}
	return s.repo.CreateNote(ctx, text)
}

// UpdateNote replaces the text of an existing note. The lookup runs before
// the text check so a missing note reports not found even when the new text
// is blank.
func (s *Service) UpdateNote(ctx context.Context, noteID int64, text string) (Note, error) {
	var updated Note
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.FindNote(txCtx, noteID); err != nil {
			return err
		}

		text = strings.TrimSpace(text)
		if text == "" {
			return ErrEmptyText
		}

		n, err := s.repo.UpdateNote(txCtx, noteID, text)
		if err != nil {
			return err
		}
		updated = n
		return nil
	})
	if err != nil {
		return Note{}, err
	}
	return updated, nil
}

func (s *Service) DeleteNote(ctx context.Context, noteID int64) error {
	return s.repo.DeleteNote(ctx, noteID)
}
