package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"klagedok/internal/domain"
	"klagedok/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	query := `INSERT INTO documents (
		id, case_id, name, kind, variant, template_id, parent_id,
		creator_role, finished, content_key, created_by, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7,
		$8, $9, $10, $11, $12, $13
	)`

	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.CaseID, doc.Name, doc.Kind, doc.Variant, doc.TemplateID, doc.ParentID,
		doc.CreatorRole, doc.Finished, doc.ContentKey, doc.CreatedBy, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc, "SELECT * FROM documents WHERE id = $1", docID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.Document, error) {
	var docs []domain.Document
	err := r.db.SelectContext(ctx, &docs,
		"SELECT * FROM documents WHERE case_id = $1 ORDER BY created_at", caseID)
	if err != nil {
		return nil, fmt.Errorf("documentRepo.ListByCase: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) ListChildren(ctx context.Context, parentID uuid.UUID) ([]domain.Document, error) {
	var docs []domain.Document
	err := r.db.SelectContext(ctx, &docs,
		"SELECT * FROM documents WHERE parent_id = $1 ORDER BY created_at", parentID)
	if err != nil {
		return nil, fmt.Errorf("documentRepo.ListChildren: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) Rename(ctx context.Context, docID uuid.UUID, name string) error {
	return r.exec(ctx, "documentRepo.Rename",
		"UPDATE documents SET name = $2, updated_at = $3 WHERE id = $1", docID, name, time.Now().UTC())
}

func (r *documentRepo) SetKind(ctx context.Context, docID uuid.UUID, kind domain.DocumentKind) error {
	return r.exec(ctx, "documentRepo.SetKind",
		"UPDATE documents SET kind = $2, updated_at = $3 WHERE id = $1", docID, kind, time.Now().UTC())
}

func (r *documentRepo) SetContentKey(ctx context.Context, docID uuid.UUID, key string) error {
	return r.exec(ctx, "documentRepo.SetContentKey",
		"UPDATE documents SET content_key = $2, updated_at = $3 WHERE id = $1", docID, key, time.Now().UTC())
}

func (r *documentRepo) SetFinished(ctx context.Context, docID uuid.UUID) error {
	return r.exec(ctx, "documentRepo.SetFinished",
		"UPDATE documents SET finished = TRUE, updated_at = $2 WHERE id = $1", docID, time.Now().UTC())
}

func (r *documentRepo) Delete(ctx context.Context, docID uuid.UUID) error {
	return r.exec(ctx, "documentRepo.Delete", "DELETE FROM documents WHERE id = $1", docID)
}

func (r *documentRepo) exec(ctx context.Context, op, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
