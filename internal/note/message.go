package note

// Client-facing messages for note request failures.
const (
	MsgNoteNotFound = "Note not found"
	MsgEmptyText    = "Text cannot be empty"
)
