package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"klagedok/internal/domain"
	"klagedok/internal/port"
)

type caseRepo struct {
	db *sqlx.DB
}

// NewCaseRepo creates a new PostgreSQL-backed CaseRepository.
func NewCaseRepo(db *sqlx.DB) port.CaseRepository {
	return &caseRepo{db: db}
}

func (r *caseRepo) GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error) {
	var c domain.Case
	err := r.db.GetContext(ctx, &c, "SELECT * FROM cases WHERE id = $1", caseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("caseRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *caseRepo) List(ctx context.Context, offset, limit int) ([]domain.Case, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM cases"); err != nil {
		return nil, 0, fmt.Errorf("caseRepo.List count: %w", err)
	}

	var cases []domain.Case
	err := r.db.SelectContext(ctx, &cases,
		"SELECT * FROM cases ORDER BY created_at DESC OFFSET $1 LIMIT $2", offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("caseRepo.List: %w", err)
	}
	return cases, total, nil
}
