package port

import (
	"context"

	"github.com/google/uuid"

	"klagedok/internal/domain"
)

// CaseRepository defines read access to cases. The case workflow itself
// (assignment, flow routing, finalization) is owned by a collaborating
// system; this backend only reads case state to classify it.
type CaseRepository interface {
	GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)
	List(ctx context.Context, offset, limit int) ([]domain.Case, int, error)
}
