package state

import (
	"context"
	"fmt"

	"github.com/Shivam7262/Writely/internal/apperr"
	"github.com/Shivam7262/Writely/internal/client/models"
)

// fakeAPI is a scriptable api.Client. Each field holds the canned result for
// the matching method; a nil error means success.
type fakeAPI struct {
	registerToken string
	registerErr   error

	loginToken string
	loginErr   error

	user    *models.User
	userErr error

	docs      []models.Document
	listErr   error
	doc       *models.Document
	getErr    error
	created   *models.Document
	createErr error
	updated   *models.Document
	updateErr error
	deleteErr error

	// calls records method names in invocation order.
	calls []string
}

func (f *fakeAPI) Register(ctx context.Context, email, password string) (string, error) {
	f.calls = append(f.calls, "Register")
	return f.registerToken, f.registerErr
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	f.calls = append(f.calls, "Login")
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) CurrentUser(ctx context.Context) (*models.User, error) {
	f.calls = append(f.calls, "CurrentUser")
	return f.user, f.userErr
}

func (f *fakeAPI) ListDocuments(ctx context.Context) ([]models.Document, error) {
	f.calls = append(f.calls, "ListDocuments")
	return f.docs, f.listErr
}

func (f *fakeAPI) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	f.calls = append(f.calls, "GetDocument")
	return f.doc, f.getErr
}

func (f *fakeAPI) CreateDocument(ctx context.Context, title, content string) (*models.Document, error) {
	f.calls = append(f.calls, "CreateDocument")
	return f.created, f.createErr
}

func (f *fakeAPI) UpdateDocument(ctx context.Context, id string, title, content *string) (*models.Document, error) {
	f.calls = append(f.calls, "UpdateDocument")
	return f.updated, f.updateErr
}

func (f *fakeAPI) DeleteDocument(ctx context.Context, id string) error {
	f.calls = append(f.calls, "DeleteDocument")
	return f.deleteErr
}

// taxonomyErr builds an error shaped like the API client's normalized ones.
func taxonomyErr(sentinel error, msg string) error {
	return fmt.Errorf("%w: %s", sentinel, msg)
}

var errInvalidCreds = taxonomyErr(apperr.ErrUnauthorized, "Not authorized")
