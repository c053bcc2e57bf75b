package state

import "github.com/Shivam7262/Writely/internal/client/models"

// DocumentState is the client-side projection of the caller's collection.
// Documents are kept newest-first, matching server ordering.
type DocumentState struct {
	Documents []models.Document
	Current   *models.Document
	Loading   bool
	Err       string
}

// DocumentAction is the closed set of collection transitions.
type DocumentAction interface{ isDocumentAction() }

type GetDocuments struct{ Documents []models.Document }
type GetDocument struct{ Document *models.Document }
type AddDocument struct{ Document models.Document }
type UpdateDocument struct{ Document models.Document }
type DeleteDocument struct{ ID string }
type DocumentError struct{ Message string }
type ClearCurrent struct{}
type ClearDocumentError struct{}
type SetLoading struct{}

func (GetDocuments) isDocumentAction()       {}
func (GetDocument) isDocumentAction()        {}
func (AddDocument) isDocumentAction()        {}
func (UpdateDocument) isDocumentAction()     {}
func (DeleteDocument) isDocumentAction()     {}
func (DocumentError) isDocumentAction()      {}
func (ClearCurrent) isDocumentAction()       {}
func (ClearDocumentError) isDocumentAction() {}
func (SetLoading) isDocumentAction()         {}

// ReduceDocuments is the pure transition function for the collection.
// Every mutating action clears Loading; call sites set it first via
// SetLoading.
func ReduceDocuments(state DocumentState, action DocumentAction) DocumentState {
	switch a := action.(type) {
	case GetDocuments:
		state.Documents = a.Documents
		state.Loading = false
		return state

	case GetDocument:
		state.Current = a.Document
		state.Loading = false
		return state

	case AddDocument:
		// prepend: a fresh document is the newest by construction
		docs := make([]models.Document, 0, len(state.Documents)+1)
		docs = append(docs, a.Document)
		docs = append(docs, state.Documents...)
		state.Documents = docs
		state.Loading = false
		return state

	case UpdateDocument:
		docs := make([]models.Document, len(state.Documents))
		for i, d := range state.Documents {
			if d.ID == a.Document.ID {
				docs[i] = a.Document
			} else {
				docs[i] = d
			}
		}
		state.Documents = docs
		updated := a.Document
		state.Current = &updated
		state.Loading = false
		return state

	case DeleteDocument:
		docs := make([]models.Document, 0, len(state.Documents))
		for _, d := range state.Documents {
			if d.ID != a.ID {
				docs = append(docs, d)
			}
		}
		state.Documents = docs
		state.Loading = false
		return state

	case DocumentError:
		state.Err = a.Message
		state.Loading = false
		return state

	case ClearCurrent:
		state.Current = nil
		return state

	case ClearDocumentError:
		state.Err = ""
		return state

	case SetLoading:
		state.Loading = true
		return state

	default:
		return state
	}
}
