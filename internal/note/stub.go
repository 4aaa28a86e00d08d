package note

import (
	"context"
	"errors"
)

type StubService struct {
	CreateNoteFunc func(ctx context.Context, text string) (Note, error)
	ListNotesFunc  func(ctx context.Context) ([]Note, error)
	UpdateNoteFunc func(ctx context.Context, noteID int64, text string) (Note, error)
	DeleteNoteFunc func(ctx context.Context, noteID int64) error
}

var _ NoteService = (*StubService)(nil)

func (s *StubService) CreateNote(ctx context.Context, text string) (Note, error) {
	if s.CreateNoteFunc == nil {
		return Note{}, errors.New("CreateNote() not implemented by stub")
	}
	return s.CreateNoteFunc(ctx, text)
}

func (s *StubService) ListNotes(ctx context.Context) ([]Note, error) {
	if s.ListNotesFunc == nil {
		return nil, errors.New("ListNotes() not implemented by stub")
	}
	return s.ListNotesFunc(ctx)
}

func (s *StubService) UpdateNote(ctx context.Context, noteID int64, text string) (Note, error) {
	if s.UpdateNoteFunc == nil {
		return Note{}, errors.New("UpdateNote() not implemented by stub")
	}
	return s.UpdateNoteFunc(ctx, noteID, text)
}

func (s *StubService) DeleteNote(ctx context.Context, noteID int64) error {
	if s.DeleteNoteFunc == nil {
		return errors.New("DeleteNote() not implemented by stub")
	}
	return s.DeleteNoteFunc(ctx, noteID)
}

type StubRepo struct {
	CreateNoteFunc func(ctx context.Context, text string) (Note, error)
	ListNotesFunc  func(ctx context.Context) ([]Note, error)
	FindNoteFunc   func(ctx context.Context, noteID int64) (Note, error)
	UpdateNoteFunc func(ctx context.Context, noteID int64, text string) (Note, error)
	DeleteNoteFunc func(ctx context.Context, noteID int64) error
}

var _ NoteRepository = (*StubRepo)(nil)

func (r *StubRepo) CreateNote(ctx context.Context, text string) (Note, error) {
	if r.CreateNoteFunc == nil {
		return Note{}, errors.New("CreateNote() not implemented by stub")
	}
	return r.CreateNoteFunc(ctx, text)
}

func (r *StubRepo) ListNotes(ctx context.Context) ([]Note, error) {
	if r.ListNotesFunc == nil {
		return nil, errors.New("ListNotes() not implemented by stub")
	}
	return r.ListNotesFunc(ctx)
}

func (r *StubRepo) FindNote(ctx context.Context, noteID int64) (Note, error) {
	if r.FindNoteFunc == nil {
		return Note{}, errors.New("FindNote() not implemented by stub")
	}
	return r.FindNoteFunc(ctx, noteID)
}

func (r *StubRepo) UpdateNote(ctx context.Context, noteID int64, text string) (Note, error) {
	if r.UpdateNoteFunc == nil {
		return Note{}, errors.New("UpdateNote() not implemented by stub")
	}
	return r.UpdateNoteFunc(ctx, noteID, text)
}

func (r *StubRepo) DeleteNote(ctx context.Context, noteID int64) error {
	if r.DeleteNoteFunc == nil {
		return errors.New("DeleteNote() not implemented by stub")
	}
	return r.DeleteNoteFunc(ctx, noteID)
}
