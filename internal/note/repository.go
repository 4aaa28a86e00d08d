package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/notesvc/internal/platform/db"
)

var _ NoteRepository = (*Repository)(nil)

var (
	ErrNotFound    = errors.New("note repository: note not found")
	ErrQueryFailed = errors.New("note repository: query failed")
)

type Repository struct {
	db db.Executor
}

func NewRepository(db db.Executor) *Repository {
	return &Repository{db: db}
}

// exec returns the transaction bound to the context when one is present,
// otherwise the pool the repository was built with.
func (r *Repository) exec(ctx context.Context) db.Executor {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

const QuerySchemaNotes = `
CREATE TABLE IF NOT EXISTS notes (
    id BIGSERIAL PRIMARY KEY,
    text TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)
`

// CreateSchema creates the notes table if it does not exist yet.
func CreateSchema(ctx context.Context, exec db.Executor) error {
	if _, err := exec.ExecContext(ctx, QuerySchemaNotes); err != nil {
		return fmt.Errorf("create notes table: %w", err)
	}
	return nil
}

const QueryNoteCreate = `
INSERT INTO notes (text)
VALUES ($1)
RETURNING id, text, created_at, updated_at
`

func (r *Repository) CreateNote(ctx context.Context, text string) (Note, error) {
	row := r.exec(ctx).QueryRowContext(ctx, QueryNoteCreate, text)
	var n Note
	if err := row.Scan(&n.ID, &n.Text, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return n, fmt.Errorf("%w: create note: %v", ErrQueryFailed, err)
	}
	return n, nil
}

const QueryNoteList = "SELECT id, text, created_at, updated_at FROM notes ORDER BY id DESC"

func (r *Repository) ListNotes(ctx context.Context) ([]Note, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, QueryNoteList)
	if err != nil {
		return nil, fmt.Errorf("%w: list notes: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Text, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("note repository: scan row: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("note repository: iterate over note rows: %w", err)
	}

	return notes, nil
}

const QueryNoteFind = "SELECT id, text, created_at, updated_at FROM notes WHERE id = $1"

func (r *Repository) FindNote(ctx context.Context, noteID int64) (Note, error) {
	row := r.exec(ctx).QueryRowContext(ctx, QueryNoteFind, noteID)
	var n Note
	if err := row.Scan(&n.ID, &n.Text, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return n, ErrNotFound
		}
		return n, fmt.Errorf("%w: find note with id %d: %v", ErrQueryFailed, noteID, err)
	}
	return n, nil
}

const QueryNoteUpdate = `
UPDATE notes
SET text = $2, updated_at = now()
WHERE id = $1
RETURNING id, text, created_at, updated_at
`

func (r *Repository) UpdateNote(ctx context.Context, noteID int64, text string) (Note, error) {
	row := r.exec(ctx).QueryRowContext(ctx, QueryNoteUpdate, noteID, text)
	var n Note
	if err := row.Scan(&n.ID, &n.Text, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return n, ErrNotFound
		}
		return n, fmt.Errorf("%w: update note with id %d: %v", ErrQueryFailed, noteID, err)
	}
	return n, nil
}

const QueryNoteDelete = "DELETE FROM notes WHERE id = $1"

func (r *Repository) DeleteNote(ctx context.Context, noteID int64) error {
	res, err := r.exec(ctx).ExecContext(ctx, QueryNoteDelete, noteID)
	if err != nil {
		return fmt.Errorf("%w: delete note with id %d: %v", ErrQueryFailed, noteID, err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete note with id %d: %v", ErrQueryFailed, noteID, err)
	}

	if numRows == 0 {
		return ErrNotFound
	}

	return nil
}
