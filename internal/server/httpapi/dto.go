package httpapi

import (
	"time"

	"github.com/Shivam7262/Writely/internal/server/models"
)

// userDTO is the wire shape of an account. The password hash never leaves
// the server.
type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type documentDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserDTO(u *models.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

func toDocumentDTO(d *models.Document) documentDTO {
	return documentDTO{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDocumentDTOs(docs []*models.Document) []documentDTO {
	out := make([]documentDTO, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentDTO(d))
	}
	return out
}
