package services

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"github.com/Shivam7262/Writely/internal/apperr"
	"github.com/Shivam7262/Writely/internal/dbx"
	"github.com/Shivam7262/Writely/internal/server/models"
	"github.com/Shivam7262/Writely/internal/server/repositories/documents"
	"github.com/Shivam7262/Writely/internal/server/repositories/users"
)

// fakeRepoManager vends in-memory repositories so service tests run without a
// database. The DBTX handle is ignored.
type fakeRepoManager struct {
	users *fakeUserRepo
	docs  *fakeDocumentRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users: &fakeUserRepo{byID: make(map[string]*models.User)},
		docs:  &fakeDocumentRepo{byID: make(map[string]*models.Document)},
	}
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository                  { return m.users }
func (m *fakeRepoManager) Documents(db dbx.DBTX) documents.Repository          { return m.docs }

type fakeUserRepo struct {
	mu   sync.Mutex
	byID map[string]*models.User
	err  error
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, apperr.ErrConflict
		}
	}
	cp := *user
	r.byID[cp.ID] = &cp
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeDocumentRepo struct {
	mu    sync.Mutex
	byID  map[string]*models.Document
	order []string
	err   error
}

func (r *fakeDocumentRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	// newest-created first, like the real query
	out := []*models.Document{}
	for i := len(r.order) - 1; i >= 0; i-- {
		d, ok := r.byID[r.order[i]]
		if !ok || d.CreatedBy != ownerID {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeDocumentRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	d, ok := r.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDocumentRepo) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	cp := *doc
	r.byID[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	out := cp
	return &out, nil
}

func (r *fakeDocumentRepo) Update(ctx context.Context, doc *models.Document) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.byID[doc.ID]; !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *doc
	r.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
