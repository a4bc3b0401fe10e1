package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/domains/book"
)

// bookService implements book.Service. It holds a cross-domain dependency
// on the author repository to resolve author_id references.
type bookService struct {
	repo       book.Repository
	authorRepo author.Repository
}

// NewBookService creates a new book service instance.
func NewBookService(repo book.Repository, authorRepo author.Repository) book.Service {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
	}
}

func (s *bookService) Create(ctx context.Context, req book.BookRequest, creatorID uuid.UUID) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The author reference is resolved before the insert so a dangling
	// author_id fails with a clean not-found, not a constraint violation.
	exists, err := s.authorRepo.ExistsByID(ctx, req.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("check author exists: %w", err)
	}
	if !exists {
		return nil, author.ErrAuthorNotFound
	}

	now := time.Now().UTC()
	newBook := &book.Book{
		ID:        uuid.New(),
		AuthorID:  req.AuthorID,
		Title:     req.Title,
		PubYear:   req.PubYear,
		Genre:     req.Genre,
		CreatorID: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, newBook); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return newBook, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	if id == uuid.Nil {
		return nil, book.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, filter book.ListFilter) ([]book.Book, error) {
	return s.repo.List(ctx, filter)
}

// Update replaces the mutable fields wholesale after existence, ownership
// and author-reference checks, in that order.
func (s *bookService) Update(ctx context.Context, id uuid.UUID, req book.BookRequest, callerID uuid.UUID) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.CreatorID != callerID {
		return nil, book.ErrNotOwner
	}

	// The replacement author_id is re-validated, same as on create.
	exists, err := s.authorRepo.ExistsByID(ctx, req.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("check author exists: %w", err)
	}
	if !exists {
		return nil, author.ErrAuthorNotFound
	}

	updated := *current
	updated.AuthorID = req.AuthorID
	updated.Title = req.Title
	updated.PubYear = req.PubYear
	updated.Genre = req.Genre
	updated.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID, callerID uuid.UUID) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if b.CreatorID != callerID {
		return book.ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}
