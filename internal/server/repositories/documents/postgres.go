// Package documents provides PostgreSQL-backed persistence for documents.
package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Shivam7262/Writely/internal/apperr"
	"github.com/Shivam7262/Writely/internal/dbx"
	"github.com/Shivam7262/Writely/internal/server/models"
)

// PostgresRepository implements document storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByOwner returns all documents created by ownerID, newest-created first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Document, error) {
	query := `
		SELECT id, title, content, created_by, created_at, updated_at FROM documents
		WHERE created_by = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select documents: %w", err)
	}
	defer rows.Close()

	var result []*models.Document
	for rows.Next() {
		var item models.Document
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Content, &item.CreatedBy,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID fetches a document regardless of owner. The service layer checks
// ownership so that existence and ownership failures stay distinguishable.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	query := `
		SELECT id, title, content, created_by, created_at, updated_at FROM documents
		WHERE id = $1
	`

	doc := &models.Document{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&doc.ID, &doc.Title, &doc.Content, &doc.CreatedBy, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return doc, nil
}

// Create inserts the document and returns it with DB-assigned timestamps.
func (r *PostgresRepository) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	query := `
		INSERT INTO documents (id, title, content, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		doc.ID, doc.Title, doc.Content, doc.CreatedBy).Scan(&doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return doc, nil
}

// Update stores the merged title/content and refreshes updated_at.
// created_by is deliberately absent from the SET list.
func (r *PostgresRepository) Update(ctx context.Context, doc *models.Document) (*models.Document, error) {
	query := `
		UPDATE documents
		SET title = $2, content = $3, updated_at = now()
		WHERE id = $1
		RETURNING created_by, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, doc.ID, doc.Title, doc.Content).Scan(
		&doc.CreatedBy, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return doc, nil
}

// Delete removes the row. A missing row maps to apperr.ErrNotFound so a
// second delete of the same id fails the same way a get would.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
