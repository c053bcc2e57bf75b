// Package api implements the REST client for the Writely backend: one
// request helper that injects the bearer token and normalizes every failure
// into the shared error taxonomy, plus typed wrappers per endpoint.
package api

import (
	"context"

	"github.com/Shivam7262/Writely/internal/client/models"
)

// Client is the surface the state controllers program against.
type Client interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)

	ListDocuments(ctx context.Context) ([]models.Document, error)
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	CreateDocument(ctx context.Context, title, content string) (*models.Document, error)
	UpdateDocument(ctx context.Context, id string, title, content *string) (*models.Document, error)
	DeleteDocument(ctx context.Context, id string) error
}
