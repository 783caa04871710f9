package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notegate/backend/internal/model"
)

type Postgres struct {
	Pool *pgxpool.Pool
}

func (db *Postgres) EnsureNotesSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS notes (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			owner TEXT NOT NULL,
			is_public BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS notes_owner_idx ON notes(owner)`,
		`CREATE INDEX IF NOT EXISTS notes_is_public_idx ON notes(is_public) WHERE is_public`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (db *Postgres) ListPublic(ctx context.Context) ([]model.Note, error) {
	query := `
		SELECT id, title, content, owner, is_public, created_at, updated_at
		FROM notes
		WHERE is_public = TRUE
		ORDER BY created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (db *Postgres) ListOwnedBy(ctx context.Context, owner string) ([]model.Note, error) {
	query := `
		SELECT id, title, content, owner, is_public, created_at, updated_at
		FROM notes
		WHERE owner = $1
		ORDER BY created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (db *Postgres) GetPublic(ctx context.Context, id int64) (*model.Note, error) {
	query := `
		SELECT id, title, content, owner, is_public, created_at, updated_at
		FROM notes
		WHERE id = $1 AND is_public = TRUE
	`
	return db.getNote(ctx, query, id)
}

// GetVisible returns the note only when it is owned by identity or
// public. A private note of another owner is indistinguishable from a
// missing one.
func (db *Postgres) GetVisible(ctx context.Context, id int64, identity string) (*model.Note, error) {
	query := `
		SELECT id, title, content, owner, is_public, created_at, updated_at
		FROM notes
		WHERE id = $1 AND (owner = $2 OR is_public = TRUE)
	`
	return db.getNote(ctx, query, id, identity)
}

func (db *Postgres) Create(ctx context.Context, owner, title, content string, isPublic bool) (int64, error) {
	query := `
		INSERT INTO notes (title, content, owner, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	var id int64
	if err := db.Pool.QueryRow(ctx, query, title, content, owner, isPublic).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (db *Postgres) Update(ctx context.Context, id int64, owner string, req model.UpdateNoteRequest) (bool, error) {
	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)

	if req.Title != nil {
		args = append(args, *req.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if req.Content != nil {
		args = append(args, *req.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}
	if req.IsPublic != nil {
		args = append(args, *req.IsPublic)
		sets = append(sets, fmt.Sprintf("is_public = $%d", len(args)))
	}
	if len(sets) == 0 {
		return false, nil
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id, owner)
	query := fmt.Sprintf(
		"UPDATE notes SET %s WHERE id = $%d AND owner = $%d",
		strings.Join(sets, ", "), len(args)-1, len(args),
	)

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) Delete(ctx context.Context, id int64, owner string) (bool, error) {
	query := `DELETE FROM notes WHERE id = $1 AND owner = $2`
	tag, err := db.Pool.Exec(ctx, query, id, owner)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) Stats(ctx context.Context, owner string) (model.NoteStats, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_public)
		FROM notes
		WHERE owner = $1
	`
	stats := model.NoteStats{Owner: owner}
	if err := db.Pool.QueryRow(ctx, query, owner).Scan(&stats.TotalNotes, &stats.PublicNotes); err != nil {
		return model.NoteStats{}, err
	}
	stats.PrivateNotes = stats.TotalNotes - stats.PublicNotes
	return stats, nil
}

func (db *Postgres) getNote(ctx context.Context, query string, args ...interface{}) (*model.Note, error) {
	var note model.Note
	err := db.Pool.QueryRow(ctx, query, args...).Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.Owner,
		&note.IsPublic,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func scanNotes(rows pgx.Rows) ([]model.Note, error) {
	notes := make([]model.Note, 0)
	for rows.Next() {
		var note model.Note
		if err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.Owner,
			&note.IsPublic,
			&note.CreatedAt,
			&note.UpdatedAt,
		); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
