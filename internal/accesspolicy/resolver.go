package accesspolicy

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"klagedok/internal/domain"
)

// Target is one document together with the raw state its classification is
// derived from. Each target carries its own case so that a batch may span
// cases in different workflow states.
type Target struct {
	Case     *domain.Case
	Document *domain.Document
	Parent   *domain.Document // nil when the document is top-level
}

// Resolver answers, for a set of documents, which principals out of a
// candidate population are currently permitted to write to each one.
//
// The scan is sequential; the (principal x document) pairs are independent,
// so it could be fanned out if populations grow.
type Resolver struct {
	eval *Evaluator
}

// NewResolver creates a resolver over an evaluator.
func NewResolver(eval *Evaluator) *Resolver {
	return &Resolver{eval: eval}
}

// PermittedWriters evaluates the write action for every candidate against
// every target, using each target's own classification. Authorization denials
// exclude the candidate silently. Any other failure is logged but never
// aborts the batch: one misconfigured pair must not block reporting
// disposition for the rest of the population.
func (r *Resolver) PermittedWriters(targets []Target, candidates []domain.User) map[uuid.UUID][]domain.User {
	result := make(map[uuid.UUID][]domain.User, len(targets))
	for _, target := range targets {
		result[target.Document.ID] = r.permittedFor(target, candidates)
	}
	return result
}

func (r *Resolver) permittedFor(target Target, candidates []domain.User) []domain.User {
	docID := target.Document.ID

	status, err := ClassifyCaseStatus(target.Case)
	if err != nil {
		log.Printf("ERROR accesspolicy.Resolver: document %s: classifying case %s: %v", docID, target.Case.ID, err)
		return nil
	}
	parent, err := ClassifyParent(target.Parent)
	if err != nil {
		log.Printf("ERROR accesspolicy.Resolver: document %s: classifying parent: %v", docID, err)
		return nil
	}
	docType := ClassifyDocumentType(target.Document)

	var permitted []domain.User
	for i := range candidates {
		candidate := &candidates[i]

		role, err := ClassifyCaseRole(target.Case, candidate)
		if err != nil {
			if !errors.Is(err, domain.ErrNoCaseRole) {
				log.Printf("ERROR accesspolicy.Resolver: document %s: classifying user %s: %v", docID, candidate.ID, err)
			}
			continue
		}

		denial := r.eval.Evaluate(Request{
			User:              role,
			CaseStatus:        status,
			DocumentType:      docType,
			Parent:            parent,
			Creator:           target.Document.CreatorRole,
			Action:            domain.ActionWrite,
			DocumentFinished:  target.Document.Finished,
			CaseMisregistered: target.Case.Misregistered,
		})
		if denial == nil {
			permitted = append(permitted, *candidate)
			continue
		}
		if denial.Category != CategoryAuthorization {
			log.Printf("accesspolicy.Resolver: document %s, user %s: %s denial: %v", docID, candidate.ID, denial.Category, denial)
		}
	}
	return permitted
}
