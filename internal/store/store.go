package store

import (
	"context"
	"errors"
	"time"

	"cvlab/internal/resume"
)

// Sentinel errors at the gateway boundary. A wrong-owner lookup returns
// ErrNotOwned, distinct from ErrNotFound, so the contract stays explicit
// here; the HTTP layer masks both as 404 to avoid existence leakage.
var (
	ErrNotFound = errors.New("resume not found")
	ErrNotOwned = errors.New("resume not owned by caller")
)

// Document is the persisted, owner-scoped resume record.
type Document struct {
	ID               uint
	OwnerID          uint
	Title            string
	TemplateID       string
	FontFamily       string
	Content          resume.Content
	PdfObjectKey     string
	PreviewImageURL  string
	PreviewObjectKey string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Update carries the optional fields of a partial update. Nil means "leave
// unchanged". There is no optimistic-concurrency token: two sessions
// updating the same document are last-write-wins.
type Update struct {
	Title            *string
	TemplateID       *string
	FontFamily       *string
	Content          *resume.Content
	PdfObjectKey     *string
	PreviewImageURL  *string
	PreviewObjectKey *string
}

// Store is the persistence gateway for resume documents. Every operation
// except Create verifies the caller's ownership of id.
type Store interface {
	Create(ctx context.Context, ownerID uint, title, templateID, fontFamily string) (*Document, error)
	Get(ctx context.Context, id, ownerID uint) (*Document, error)
	Update(ctx context.Context, id, ownerID uint, upd Update) error
	ListByOwner(ctx context.Context, ownerID uint) ([]Document, error)
	Delete(ctx context.Context, id, ownerID uint) error
}
