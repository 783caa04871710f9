package model

import "time"

type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Owner     string    `json:"user"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic bool   `json:"is_public"`
}

// UpdateNoteRequest carries a partial update; nil fields are left untouched.
type UpdateNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsPublic *bool   `json:"is_public"`
}

func (r UpdateNoteRequest) Empty() bool {
	return r.Title == nil && r.Content == nil && r.IsPublic == nil
}

type CreateNoteResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type NoteStats struct {
	TotalNotes   int64  `json:"total_notes"`
	PublicNotes  int64  `json:"public_notes"`
	PrivateNotes int64  `json:"private_notes"`
	Owner        string `json:"user"`
}
