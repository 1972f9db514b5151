package service

import (
	"context"

	"github.com/google/uuid"

	"klagedok/internal/accesspolicy"
	"klagedok/internal/domain"
	"klagedok/internal/port"
)

// AccessDecision is the answer to a single can-this-user-do-this question.
type AccessDecision struct {
	Allowed  bool                  `json:"allowed"`
	Category accesspolicy.Category `json:"category,omitempty"`
	Outcome  domain.Outcome        `json:"outcome,omitempty"`
	Message  string                `json:"message,omitempty"`
}

// DocumentWriters lists the principals currently permitted to write to one
// document.
type DocumentWriters struct {
	DocumentID uuid.UUID     `json:"document_id"`
	Writers    []WriterEntry `json:"writers"`
}

// WriterEntry identifies one permitted principal.
type WriterEntry struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

// AccessService exposes the policy evaluator for explain-style queries and
// bulk access resolution.
type AccessService interface {
	// CanPerform evaluates one (user, document, action) tuple and explains
	// the result. Denials are a result here, not an error; only
	// classification and lookup failures propagate as errors.
	CanPerform(ctx context.Context, user *domain.User, docID uuid.UUID, action domain.DocumentAction) (*AccessDecision, error)

	// PermittedWriters resolves, for every document on the case, which users
	// holding a caseworker or reviewer capability may currently write to it.
	PermittedWriters(ctx context.Context, caseID uuid.UUID) ([]DocumentWriters, error)
}

type accessService struct {
	docRepo  port.DocumentRepository
	caseRepo port.CaseRepository
	userRepo port.UserRepository
	eval     *accesspolicy.Evaluator
	resolver *accesspolicy.Resolver
}

// NewAccessService creates a new AccessService implementation.
func NewAccessService(
	docRepo port.DocumentRepository,
	caseRepo port.CaseRepository,
	userRepo port.UserRepository,
	eval *accesspolicy.Evaluator,
) AccessService {
	return &accessService{
		docRepo:  docRepo,
		caseRepo: caseRepo,
		userRepo: userRepo,
		eval:     eval,
		resolver: accesspolicy.NewResolver(eval),
	}
}

func (s *accessService) CanPerform(ctx context.Context, user *domain.User, docID uuid.UUID, action domain.DocumentAction) (*AccessDecision, error) {
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	kase, err := s.caseRepo.GetByID(ctx, doc.CaseID)
	if err != nil {
		return nil, err
	}
	var parent *domain.Document
	if doc.ParentID != nil {
		parent, err = s.docRepo.GetByID(ctx, *doc.ParentID)
		if err != nil {
			return nil, err
		}
	}

	role, err := accesspolicy.ClassifyCaseRole(kase, user)
	if err != nil {
		return nil, err
	}
	status, err := accesspolicy.ClassifyCaseStatus(kase)
	if err != nil {
		return nil, err
	}
	parentType, err := accesspolicy.ClassifyParent(parent)
	if err != nil {
		return nil, err
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
	if denial == nil {
		return &AccessDecision{Allowed: true}, nil
	}
	return &AccessDecision{
		Allowed:  false,
		Category: denial.Category,
		Outcome:  denial.Outcome,
		Message:  denial.Message,
	}, nil
}

func (s *accessService) PermittedWriters(ctx context.Context, caseID uuid.UUID) ([]DocumentWriters, error) {
	kase, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	docs, err := s.docRepo.ListByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.candidates(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*domain.Document, len(docs))
	for i := range docs {
		byID[docs[i].ID] = &docs[i]
	}

	targets := make([]accesspolicy.Target, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		var parent *domain.Document
		if doc.ParentID != nil {
			parent = byID[*doc.ParentID]
		}
		targets = append(targets, accesspolicy.Target{Case: kase, Document: doc, Parent: parent})
	}

	permitted := s.resolver.PermittedWriters(targets, candidates)

	result := make([]DocumentWriters, 0, len(docs))
	for i := range docs {
		users := permitted[docs[i].ID]
		writers := make([]WriterEntry, 0, len(users))
		for _, u := range users {
			writers = append(writers, WriterEntry{UserID: u.ID, FullName: u.FullName, Email: u.Email})
		}
		result = append(result, DocumentWriters{DocumentID: docs[i].ID, Writers: writers})
	}
	return result, nil
}

// candidates is the population scanned for access: everyone holding either
// generic capability, deduplicated.
func (s *accessService) candidates(ctx context.Context) ([]domain.User, error) {
	caseworkers, err := s.userRepo.ListByCapability(ctx, domain.CapabilityCaseworker)
	if err != nil {
		return nil, err
	}
	reviewers, err := s.userRepo.ListByCapability(ctx, domain.CapabilityReviewer)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(caseworkers)+len(reviewers))
	combined := make([]domain.User, 0, len(caseworkers)+len(reviewers))
	for _, u := range append(caseworkers, reviewers...) {
		if seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		combined = append(combined, u)
	}
	return combined, nil
}
