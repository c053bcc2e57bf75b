package state

import (
	"context"
	"sync"

	"github.com/Shivam7262/Writely/internal/client/api"
)

// DocumentController drives DocumentState. Every method sets Loading first,
// runs the API call, and dispatches either the result or a DocumentError —
// failures land in state, not in return values, so the views read one place.
//
// There is no guard against overlapping mutations; the terminal client is
// sequential per command, matching the original behavior.
type DocumentController struct {
	api api.Client

	mu    sync.Mutex
	state DocumentState
}

func NewDocumentController(client api.Client) *DocumentController {
	return &DocumentController{api: client}
}

// State returns a copy of the current DocumentState.
func (c *DocumentController) State() DocumentState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *DocumentController) dispatch(action DocumentAction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = ReduceDocuments(c.state, action)
}

// FetchDocuments loads the caller's collection, newest first.
func (c *DocumentController) FetchDocuments(ctx context.Context) {
	c.dispatch(SetLoading{})

	docs, err := c.api.ListDocuments(ctx)
	if err != nil {
		c.dispatch(DocumentError{Message: messageOf(err)})
		return
	}
	c.dispatch(GetDocuments{Documents: docs})
}

// FetchDocument loads a single document into Current.
func (c *DocumentController) FetchDocument(ctx context.Context, id string) {
	c.dispatch(SetLoading{})

	doc, err := c.api.GetDocument(ctx, id)
	if err != nil {
		c.dispatch(DocumentError{Message: messageOf(err)})
		return
	}
	c.dispatch(GetDocument{Document: doc})
}

// AddDocument creates a document and prepends it to the collection.
func (c *DocumentController) AddDocument(ctx context.Context, title, content string) {
	c.dispatch(SetLoading{})

	doc, err := c.api.CreateDocument(ctx, title, content)
	if err != nil {
		c.dispatch(DocumentError{Message: messageOf(err)})
		return
	}
	c.dispatch(AddDocument{Document: *doc})
}

// EditDocument applies a partial update; nil fields are left unchanged.
func (c *DocumentController) EditDocument(ctx context.Context, id string, title, content *string) {
	c.dispatch(SetLoading{})

	doc, err := c.api.UpdateDocument(ctx, id, title, content)
	if err != nil {
		c.dispatch(DocumentError{Message: messageOf(err)})
		return
	}
	c.dispatch(UpdateDocument{Document: *doc})
}

// RemoveDocument deletes by id and filters it out of the collection.
func (c *DocumentController) RemoveDocument(ctx context.Context, id string) {
	c.dispatch(SetLoading{})

	if err := c.api.DeleteDocument(ctx, id); err != nil {
		c.dispatch(DocumentError{Message: messageOf(err)})
		return
	}
	c.dispatch(DeleteDocument{ID: id})
}

// ClearCurrent drops the Current selection.
func (c *DocumentController) ClearCurrent() {
	c.dispatch(ClearCurrent{})
}

// ClearError dismisses the error banner.
func (c *DocumentController) ClearError() {
	c.dispatch(ClearDocumentError{})
}
