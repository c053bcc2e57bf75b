package documents

import (
	"context"

	"github.com/Shivam7262/Writely/internal/server/models"
)

type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Document, error)
	GetByID(ctx context.Context, id string) (*models.Document, error)
	Create(ctx context.Context, doc *models.Document) (*models.Document, error)
	Update(ctx context.Context, doc *models.Document) (*models.Document, error)
	Delete(ctx context.Context, id string) error
}
