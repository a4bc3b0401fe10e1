package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/author"
)

// authorService implements author.Service
type authorService struct {
	repo author.Repository
}

// NewAuthorService creates a new author service instance.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req author.CreateAuthorRequest, creatorID uuid.UUID) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newAuthor := &author.Author{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Bio:       req.Bio,
		CreatorID: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, newAuthor); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	return newAuthor, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx)
}

// Delete removes an author after the ownership and referential checks.
// Check order matters: a missing author is NotFound even for a non-owner,
// and ownership is decided before the book guard.
func (s *authorService) Delete(ctx context.Context, id uuid.UUID, callerID uuid.UUID) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if a.CreatorID != callerID {
		return author.ErrNotOwner
	}

	bookCount, err := s.repo.CountBooks(ctx, id)
	if err != nil {
		return fmt.Errorf("check book count: %w", err)
	}
	if bookCount > 0 {
		return author.ErrAuthorHasBooks
	}

	return s.repo.Delete(ctx, id)
}
