package service

import (
	"context"
	"fmt"

	"github.com/notegate/backend/internal/model"
)

// NoteRepo is the persistence surface consumed by NoteService. Lookup
// methods return (nil, nil) / (false, nil) when no row is visible to the
// caller, so the repository never distinguishes "absent" from "not yours".
type NoteRepo interface {
	ListPublic(ctx context.Context) ([]model.Note, error)
	ListOwnedBy(ctx context.Context, owner string) ([]model.Note, error)
	GetPublic(ctx context.Context, id int64) (*model.Note, error)
	GetVisible(ctx context.Context, id int64, identity string) (*model.Note, error)
	Create(ctx context.Context, owner, title, content string, isPublic bool) (int64, error)
	Update(ctx context.Context, id int64, owner string, req model.UpdateNoteRequest) (bool, error)
	Delete(ctx context.Context, id int64, owner string) (bool, error)
	Stats(ctx context.Context, owner string) (model.NoteStats, error)
}

// NoteService applies the visibility rules: public notes are readable by
// anyone, everything else only by its owner, and a note that exists but
// is not visible behaves exactly like one that does not exist.
type NoteService struct {
	repo NoteRepo
}

func NewNoteService(repo NoteRepo) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) ListPublic(ctx context.Context) ([]model.Note, error) {
	return s.repo.ListPublic(ctx)
}

func (s *NoteService) ListOwnedBy(ctx context.Context, identity string) ([]model.Note, error) {
	return s.repo.ListOwnedBy(ctx, identity)
}

func (s *NoteService) GetPublicByID(ctx context.Context, id int64) (*model.Note, error) {
	note, err := s.repo.GetPublic(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}
	return note, nil
}

func (s *NoteService) GetVisibleByID(ctx context.Context, id int64, identity string) (*model.Note, error) {
	note, err := s.repo.GetVisible(ctx, id, identity)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}
	return note, nil
}

// Create stores a new note attributed to identity. Whatever owner the
// client may have put in the payload is irrelevant; attribution comes
// from the validated token only.
func (s *NoteService) Create(ctx context.Context, identity string, req model.CreateNoteRequest) (int64, error) {
	return s.repo.Create(ctx, identity, req.Title, req.Content, req.IsPublic)
}

func (s *NoteService) Update(ctx context.Context, id int64, identity string, req model.UpdateNoteRequest) error {
	if req.Empty() {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	found, err := s.repo.Update(ctx, id, identity, req)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *NoteService) Delete(ctx context.Context, id int64, identity string) error {
	found, err := s.repo.Delete(ctx, id, identity)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *NoteService) Stats(ctx context.Context, identity string) (model.NoteStats, error) {
	return s.repo.Stats(ctx, identity)
}
