package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Shivam7262/Writely/internal/apperr"
	"github.com/Shivam7262/Writely/internal/server/models"
	"github.com/Shivam7262/Writely/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const maxTitleLen = 200

// DocumentService implements owner-checked CRUD over documents. Every
// operation takes the verified caller id; ownership is an explicit predicate
// here rather than something assumed from storage behavior.
//
// Get, Update and Delete check existence before ownership: a non-owner
// probing an existing id gets ErrForbidden, a missing id gets ErrNotFound.
// The ordering is inherited behavior and callers depend on it.
type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager) *DocumentService {
	return &DocumentService{db: db, repomanager: m}
}

// List returns the caller's documents, newest-created first.
func (s *DocumentService) List(ctx context.Context, ownerID string) ([]*models.Document, error) {
	repo := s.repomanager.Documents(s.db)

	docs, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	return docs, nil
}

// Get returns a single document after the existence/ownership check.
func (s *DocumentService) Get(ctx context.Context, ownerID, id string) (*models.Document, error) {
	return s.getOwned(ctx, ownerID, id)
}

// Create stores a new document. CreatedBy is always the verified caller;
// any client-supplied owner field never reaches this layer.
func (s *DocumentService) Create(ctx context.Context, ownerID, title, content string) (*models.Document, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: please add a title", apperr.ErrValidation)
	}
	if len(title) > maxTitleLen {
		return nil, fmt.Errorf("%w: title cannot be more than %d characters", apperr.ErrValidation, maxTitleLen)
	}

	doc := &models.Document{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedBy: ownerID,
	}

	repo := s.repomanager.Documents(s.db)
	doc, err := repo.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error creating document: %w", err)
	}
	return doc, nil
}

// Update merges the patch into the stored document. Nil patch fields are
// left unchanged; UpdatedAt is refreshed by the store.
func (s *DocumentService) Update(ctx context.Context, ownerID, id string, patch models.DocumentPatch) (*models.Document, error) {
	doc, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: please add a title", apperr.ErrValidation)
		}
		if len(title) > maxTitleLen {
			return nil, fmt.Errorf("%w: title cannot be more than %d characters", apperr.ErrValidation, maxTitleLen)
		}
		doc.Title = title
	}
	if patch.Content != nil {
		doc.Content = *patch.Content
	}

	repo := s.repomanager.Documents(s.db)
	doc, err = repo.Update(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error updating document: %w", err)
	}
	return doc, nil
}

// Delete removes the document. A repeat delete of the same id returns
// ErrNotFound from the existence check, so the failure is stable.
func (s *DocumentService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.getOwned(ctx, ownerID, id); err != nil {
		return err
	}

	repo := s.repomanager.Documents(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}
	return nil
}

// getOwned fetches by id and then applies the ownership predicate, in that
// order.
func (s *DocumentService) getOwned(ctx context.Context, ownerID, id string) (*models.Document, error) {
	repo := s.repomanager.Documents(s.db)

	doc, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.CreatedBy != ownerID {
		return nil, apperr.ErrForbidden
	}
	return doc, nil
}
