package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
)

var errNotLoggedIn = errors.New("not logged in")

// requireLogin is the PrivateRoute analogue: document commands refuse to
// run without an authenticated session.
func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return errNotLoggedIn
	}
	return nil
}

// List fetches and prints the collection, newest first.
func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	a.docs.FetchDocuments(ctx)
	a.syncAuth()

	s := a.docs.State()
	if s.Err != "" {
		return nil
	}
	if len(s.Documents) == 0 {
		printlnFn("No documents yet. Use 'new' to create one.")
		return nil
	}
	for _, d := range s.Documents {
		printlnFn(fmt.Sprintf("%s  %s  (updated %s)", d.ID, d.Title, d.UpdatedAt.Format("2006-01-02 15:04")))
	}
	return nil
}

// Show fetches a single document and prints it in full.
func (a *App) Show(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := GetSimpleText(a.reader, "Enter document id", os.Stdout)
	if err != nil {
		return err
	}

	a.docs.FetchDocument(ctx, id)
	a.syncAuth()

	s := a.docs.State()
	if s.Err != "" || s.Current == nil {
		return nil
	}
	printlnFn("# " + s.Current.Title)
	printlnFn(s.Current.Content)
	return nil
}

// New prompts for a title and body and creates a document.
func (a *App) New(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter content", os.Stdout)
	if err != nil {
		return err
	}

	a.docs.AddDocument(ctx, title, content)
	a.syncAuth()

	if a.docs.State().Err == "" {
		printlnFn("Created.")
	}
	return nil
}

// Edit applies a partial update: empty answers leave the field unchanged.
func (a *App) Edit(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := GetSimpleText(a.reader, "Enter document id", os.Stdout)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "New title (leave empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "New content (leave empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	var titlePtr, contentPtr *string
	if title != "" {
		titlePtr = &title
	}
	if content != "" {
		contentPtr = &content
	}

	a.docs.EditDocument(ctx, id, titlePtr, contentPtr)
	a.syncAuth()

	if a.docs.State().Err == "" {
		printlnFn("Updated.")
	}
	return nil
}

// Delete removes a document by id.
func (a *App) Delete(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := GetSimpleText(a.reader, "Enter document id", os.Stdout)
	if err != nil {
		return err
	}

	a.docs.RemoveDocument(ctx, id)
	a.syncAuth()

	if a.docs.State().Err == "" {
		printlnFn("Deleted.")
	}
	return nil
}
