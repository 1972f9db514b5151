package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"klagedok/internal/accesspolicy"
	"klagedok/internal/config"
	"klagedok/internal/domain"
	"klagedok/internal/port"
)

// Actor is the identity an operation runs as. System actors are trusted
// backend-initiated executions not subject to end-user policy.
type Actor struct {
	User   *domain.User
	System bool
}

// CreateDocumentInput is the DTO for creating a document in progress.
type CreateDocumentInput struct {
	CaseID     uuid.UUID
	Name       string
	Kind       domain.DocumentKind
	Variant    domain.DocumentVariant
	TemplateID *string
	ParentID   *uuid.UUID
}

// UploadContentInput is the DTO for uploading content to an uploaded-variant
// document.
type UploadContentInput struct {
	DocumentID  uuid.UUID
	Body        io.Reader
	Size        int64
	ContentType string
}

// DocumentService owns every mutation of documents in progress. Each mutation
// is gated by the access-policy evaluator using the document's own case state.
type DocumentService interface {
	Create(ctx context.Context, actor Actor, input *CreateDocumentInput) (*domain.Document, error)
	GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error)
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.Document, error)
	UploadContent(ctx context.Context, actor Actor, input *UploadContentInput) error
	Rename(ctx context.Context, actor Actor, docID uuid.UUID, name string) error
	ChangeKind(ctx context.Context, actor Actor, docID uuid.UUID, kind domain.DocumentKind) error
	Remove(ctx context.Context, actor Actor, docID uuid.UUID) error
	Finish(ctx context.Context, actor Actor, docID uuid.UUID) error
}

type documentService struct {
	docRepo  port.DocumentRepository
	caseRepo port.CaseRepository
	storage  port.ObjectStorage
	eval     *accesspolicy.Evaluator
	s3cfg    *config.S3Config
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.DocumentRepository,
	caseRepo port.CaseRepository,
	storage port.ObjectStorage,
	eval *accesspolicy.Evaluator,
	s3cfg *config.S3Config,
) DocumentService {
	return &documentService{
		docRepo:  docRepo,
		caseRepo: caseRepo,
		storage:  storage,
		eval:     eval,
		s3cfg:    s3cfg,
	}
}

func (s *documentService) Create(ctx context.Context, actor Actor, input *CreateDocumentInput) (*domain.Document, error) {
	kase, err := s.caseRepo.GetByID(ctx, input.CaseID)
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:          uuid.New(),
		CaseID:      input.CaseID,
		Name:        input.Name,
		Kind:        input.Kind,
		Variant:     input.Variant,
		TemplateID:  input.TemplateID,
		ParentID:    input.ParentID,
		CreatorRole: creatorFor(actor, kase),
	}
	if actor.User != nil {
		doc.CreatedBy = actor.User.ID
	}

	var parent *domain.Document
	if input.ParentID != nil {
		parent, err = s.docRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
	}

	if denial := s.gate(kase, doc, parent, actor, domain.ActionCreate); denial != nil {
		return nil, denial
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error) {
	return s.docRepo.GetByID(ctx, docID)
}

func (s *documentService) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.Document, error) {
	return s.docRepo.ListByCase(ctx, caseID)
}

func (s *documentService) UploadContent(ctx context.Context, actor Actor, input *UploadContentInput) error {
	doc, kase, parent, err := s.load(ctx, input.DocumentID)
	if err != nil {
		return err
	}
	if denial := s.gate(kase, doc, parent, actor, domain.ActionWrite); denial != nil {
		return denial
	}

	key := fmt.Sprintf("cases/%s/documents/%s", doc.CaseID, doc.ID)
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        input.Body,
		ContentType: input.ContentType,
		Size:        input.Size,
	}); err != nil {
		return fmt.Errorf("documentService.UploadContent: %w", err)
	}
	return s.docRepo.SetContentKey(ctx, doc.ID, key)
}

func (s *documentService) Rename(ctx context.Context, actor Actor, docID uuid.UUID, name string) error {
	doc, kase, parent, err := s.load(ctx, docID)
	if err != nil {
		return err
	}
	if denial := s.gate(kase, doc, parent, actor, domain.ActionRename); denial != nil {
		return denial
	}
	return s.docRepo.Rename(ctx, docID, name)
}

func (s *documentService) ChangeKind(ctx context.Context, actor Actor, docID uuid.UUID, kind domain.DocumentKind) error {
	doc, kase, parent, err := s.load(ctx, docID)
	if err != nil {
		return err
	}
	if denial := s.gate(kase, doc, parent, actor, domain.ActionChangeType); denial != nil {
		return denial
	}
	return s.docRepo.SetKind(ctx, docID, kind)
}

func (s *documentService) Remove(ctx context.Context, actor Actor, docID uuid.UUID) error {
	doc, kase, parent, err := s.load(ctx, docID)
	if err != nil {
		return err
	}
	if denial := s.gate(kase, doc, parent, actor, domain.ActionRemove); denial != nil {
		return denial
	}

	// Attachments go with their parent.
	children, err := s.docRepo.ListChildren(ctx, docID)
	if err != nil {
		return err
	}
	for i := range children {
		if err := s.deleteOne(ctx, &children[i]); err != nil {
			return err
		}
	}
	return s.deleteOne(ctx, doc)
}

func (s *documentService) deleteOne(ctx context.Context, doc *domain.Document) error {
	if doc.ContentKey != nil {
		if err := s.storage.Delete(ctx, s.s3cfg.Bucket, *doc.ContentKey); err != nil {
			return fmt.Errorf("documentService.Remove: %w", err)
		}
	}
	return s.docRepo.Delete(ctx, doc.ID)
}

func (s *documentService) Finish(ctx context.Context, actor Actor, docID uuid.UUID) error {
	doc, kase, parent, err := s.load(ctx, docID)
	if err != nil {
		return err
	}
	if denial := s.gate(kase, doc, parent, actor, domain.ActionFinish); denial != nil {
		return denial
	}
	return s.docRepo.SetFinished(ctx, docID)
}

// load fetches the document plus the case and parent its classification
// depends on.
func (s *documentService) load(ctx context.Context, docID uuid.UUID) (*domain.Document, *domain.Case, *domain.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, nil, nil, err
	}
	kase, err := s.caseRepo.GetByID(ctx, doc.CaseID)
	if err != nil {
		return nil, nil, nil, err
	}
	var parent *domain.Document
	if doc.ParentID != nil {
		parent, err = s.docRepo.GetByID(ctx, *doc.ParentID)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return doc, kase, parent, nil
}

// gate assembles the classification tuple and evaluates the requested action.
// The returned *Denial is nil on success.
func (s *documentService) gate(kase *domain.Case, doc *domain.Document, parent *domain.Document, actor Actor, action domain.DocumentAction) error {
	if actor.System {
		denial := s.eval.Evaluate(accesspolicy.Request{SystemContext: true, Action: action})
		if denial != nil {
			return denial
		}
		return nil
	}
	if actor.User == nil {
		return domain.ErrUnauthorized
	}

	role, err := accesspolicy.ClassifyCaseRole(kase, actor.User)
	if err != nil {
		return err
	}
	status, err := accesspolicy.ClassifyCaseStatus(kase)
	if err != nil {
		return err
	}
	parentType, err := accesspolicy.ClassifyParent(parent)
	if err != nil {
		return err
	}

	denial := s.eval.Evaluate(accesspolicy.Request{
		User:              role,
		CaseStatus:        status,
		DocumentType:      accesspolicy.ClassifyDocumentType(doc),
		Parent:            parentType,
		Creator:           doc.CreatorRole,
		Action:            action,
		DocumentFinished:  doc.Finished,
		CaseMisregistered: kase.Misregistered,
	})
	if denial != nil {
		return denial
	}
	return nil
}

// creatorFor records which role authored a document at creation time.
func creatorFor(actor Actor, kase *domain.Case) domain.CreatorRole {
	if actor.System || actor.User == nil {
		return domain.CreatorNone
	}
	switch {
	case kase.ReviewerID != nil && *kase.ReviewerID == actor.User.ID:
		return domain.CreatorReviewer
	case kase.CoSignerID != nil && *kase.CoSignerID == actor.User.ID:
		return domain.CreatorCoSigner
	}
	return domain.CreatorCaseworker
}
