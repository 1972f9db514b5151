package port

import (
	"context"

	"github.com/google/uuid"

	"klagedok/internal/domain"
)

// DocumentRepository defines the contract for document-in-progress persistence.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error)
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.Document, error)
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]domain.Document, error)
	Rename(ctx context.Context, docID uuid.UUID, name string) error
	SetKind(ctx context.Context, docID uuid.UUID, kind domain.DocumentKind) error
	SetContentKey(ctx context.Context, docID uuid.UUID, key string) error
	SetFinished(ctx context.Context, docID uuid.UUID) error
	Delete(ctx context.Context, docID uuid.UUID) error
}
