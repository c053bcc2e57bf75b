package state

import (
	"context"
	"testing"

	"github.com/Shivam7262/Writely/internal/apperr"
	"github.com/Shivam7262/Writely/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceDocuments(t *testing.T) {
	d1 := models.Document{ID: "d1", Title: "one"}
	d2 := models.Document{ID: "d2", Title: "two"}

	t.Run("get documents replaces collection", func(t *testing.T) {
		got := ReduceDocuments(DocumentState{Loading: true}, GetDocuments{Documents: []models.Document{d1, d2}})
		assert.Equal(t, []models.Document{d1, d2}, got.Documents)
		assert.False(t, got.Loading)
	})

	t.Run("get document sets current", func(t *testing.T) {
		got := ReduceDocuments(DocumentState{Loading: true}, GetDocument{Document: &d1})
		assert.Equal(t, &d1, got.Current)
		assert.False(t, got.Loading)
	})

	t.Run("add prepends", func(t *testing.T) {
		got := ReduceDocuments(DocumentState{Documents: []models.Document{d1}}, AddDocument{Document: d2})
		require.Len(t, got.Documents, 2)
		assert.Equal(t, "d2", got.Documents[0].ID)
		assert.Equal(t, "d1", got.Documents[1].ID)
	})

	t.Run("update replaces in place and sets current", func(t *testing.T) {
		renamed := models.Document{ID: "d1", Title: "renamed"}
		got := ReduceDocuments(DocumentState{Documents: []models.Document{d1, d2}}, UpdateDocument{Document: renamed})
		require.Len(t, got.Documents, 2)
		assert.Equal(t, "renamed", got.Documents[0].Title)
		assert.Equal(t, "two", got.Documents[1].Title)
		require.NotNil(t, got.Current)
		assert.Equal(t, "renamed", got.Current.Title)
	})

	t.Run("delete filters by id", func(t *testing.T) {
		got := ReduceDocuments(DocumentState{Documents: []models.Document{d1, d2}}, DeleteDocument{ID: "d1"})
		require.Len(t, got.Documents, 1)
		assert.Equal(t, "d2", got.Documents[0].ID)
	})

	t.Run("delete of unknown id is a no-op", func(t *testing.T) {
		got := ReduceDocuments(DocumentState{Documents: []models.Document{d1}}, DeleteDocument{ID: "ghost"})
		assert.Len(t, got.Documents, 1)
	})

	t.Run("error keeps collection", func(t *testing.T) {
		got := ReduceDocuments(DocumentState{Documents: []models.Document{d1}, Loading: true}, DocumentError{Message: "boom"})
		assert.Equal(t, "boom", got.Err)
		assert.False(t, got.Loading)
		assert.Len(t, got.Documents, 1)
	})

	t.Run("clear current", func(t *testing.T) {
		got := ReduceDocuments(DocumentState{Current: &d1}, ClearCurrent{})
		assert.Nil(t, got.Current)
	})

	t.Run("clear error", func(t *testing.T) {
		got := ReduceDocuments(DocumentState{Err: "boom"}, ClearDocumentError{})
		assert.Empty(t, got.Err)
	})

	t.Run("set loading", func(t *testing.T) {
		got := ReduceDocuments(DocumentState{}, SetLoading{})
		assert.True(t, got.Loading)
	})
}

func TestDocumentController_Fetch(t *testing.T) {
	ctx := context.Background()
	docs := []models.Document{{ID: "d2", Title: "newer"}, {ID: "d1", Title: "older"}}

	t.Run("success", func(t *testing.T) {
		c := NewDocumentController(&fakeAPI{docs: docs})
		c.FetchDocuments(ctx)

		s := c.State()
		assert.Equal(t, docs, s.Documents)
		assert.False(t, s.Loading)
		assert.Empty(t, s.Err)
	})

	t.Run("failure lands in state", func(t *testing.T) {
		c := NewDocumentController(&fakeAPI{listErr: taxonomyErr(apperr.ErrUnexpected, "Server Error")})
		c.FetchDocuments(ctx)

		s := c.State()
		assert.Equal(t, "Server Error", s.Err)
		assert.False(t, s.Loading)
	})
}

func TestDocumentController_FetchDocument(t *testing.T) {
	ctx := context.Background()
	doc := &models.Document{ID: "d1", Title: "mine", Content: "body"}

	t.Run("success", func(t *testing.T) {
		c := NewDocumentController(&fakeAPI{doc: doc})
		c.FetchDocument(ctx, "d1")
		assert.Equal(t, doc, c.State().Current)
	})

	t.Run("forbidden", func(t *testing.T) {
		c := NewDocumentController(&fakeAPI{getErr: taxonomyErr(apperr.ErrForbidden, "Not authorized to access this document")})
		c.FetchDocument(ctx, "d1")

		s := c.State()
		assert.Nil(t, s.Current)
		assert.Equal(t, "Not authorized to access this document", s.Err)
	})
}

func TestDocumentController_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("prepends new document", func(t *testing.T) {
		created := &models.Document{ID: "d2", Title: "fresh"}
		f := &fakeAPI{docs: []models.Document{{ID: "d1"}}, created: created}
		c := NewDocumentController(f)

		c.FetchDocuments(ctx)
		c.AddDocument(ctx, "fresh", "body")

		s := c.State()
		require.Len(t, s.Documents, 2)
		assert.Equal(t, "d2", s.Documents[0].ID)
	})

	t.Run("validation failure", func(t *testing.T) {
		c := NewDocumentController(&fakeAPI{createErr: taxonomyErr(apperr.ErrValidation, "please add a title")})
		c.AddDocument(ctx, "", "body")
		assert.Equal(t, "please add a title", c.State().Err)
	})
}

func TestDocumentController_Edit(t *testing.T) {
	ctx := context.Background()
	title := "renamed"

	updated := &models.Document{ID: "d1", Title: "renamed", Content: "body"}
	f := &fakeAPI{docs: []models.Document{{ID: "d1", Title: "old"}}, updated: updated}
	c := NewDocumentController(f)

	c.FetchDocuments(ctx)
	c.EditDocument(ctx, "d1", &title, nil)

	s := c.State()
	require.Len(t, s.Documents, 1)
	assert.Equal(t, "renamed", s.Documents[0].Title)
	require.NotNil(t, s.Current)
	assert.Equal(t, "renamed", s.Current.Title)
}

func TestDocumentController_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("success filters out", func(t *testing.T) {
		f := &fakeAPI{docs: []models.Document{{ID: "d1"}, {ID: "d2"}}}
		c := NewDocumentController(f)

		c.FetchDocuments(ctx)
		c.RemoveDocument(ctx, "d1")

		s := c.State()
		require.Len(t, s.Documents, 1)
		assert.Equal(t, "d2", s.Documents[0].ID)
	})

	t.Run("not found keeps collection", func(t *testing.T) {
		f := &fakeAPI{
			docs:      []models.Document{{ID: "d1"}},
			deleteErr: taxonomyErr(apperr.ErrNotFound, "Document not found"),
		}
		c := NewDocumentController(f)

		c.FetchDocuments(ctx)
		c.RemoveDocument(ctx, "ghost")

		s := c.State()
		assert.Len(t, s.Documents, 1)
		assert.Equal(t, "Document not found", s.Err)
	})
}
