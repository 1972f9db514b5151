package accesspolicy

import (
	"github.com/google/uuid"

	"klagedok/internal/domain"
)

// Classification derives the abstract policy dimensions from raw case and
// document state. All functions here are pure: no I/O, no side effects.

// ClassifyCaseRole derives the acting user's role relative to the case. The
// ladder is evaluated in order and the first match wins, so a case-specific
// assignment always beats a generic capability. An identity with no assignment
// and neither capability has no role on the case at all; that is rejected with
// domain.ErrNoCaseRole before any policy-table lookup.
func ClassifyCaseRole(c *domain.Case, user *domain.User) (domain.CaseRole, error) {
	switch {
	case !c.Finalized() && idEquals(c.CaseworkerID, user.ID):
		return domain.RoleAssignedCaseworker, nil
	case idEquals(c.CoSignerID, user.ID):
		return domain.RoleAssignedCoSigner, nil
	case idEquals(c.ReviewerID, user.ID):
		return domain.RoleAssignedReviewer, nil
	case user.HasCapability(domain.CapabilityReviewer):
		return domain.RoleGenericReviewer, nil
	case user.HasCapability(domain.CapabilityCaseworker):
		return domain.RoleGenericCaseworker, nil
	}
	return "", domain.ErrNoCaseRole
}

// ClassifyCaseStatus derives the case's workflow status from its assignment,
// finalization and the two flow states. The ladder is total over the defined
// combinations; anything else fails with domain.ErrUnclassifiedCaseStatus and
// is never silently treated as one of the defined statuses.
func ClassifyCaseStatus(c *domain.Case) (domain.CaseStatus, error) {
	cs, rv := c.CoSignerFlow, c.ReviewerFlow
	switch {
	case c.Finalized():
		return domain.CaseStatusCompleted, nil
	case c.CaseworkerID == nil:
		return domain.CaseStatusOpen, nil
	case cs == domain.FlowNotSent && rv == domain.FlowNotSent:
		return domain.CaseStatusWithCaseworker, nil
	case cs == domain.FlowSent && rv == domain.FlowSent:
		return domain.CaseStatusWithCoSignerAndReviewer, nil
	case cs == domain.FlowSent && rv == domain.FlowReturned:
		return domain.CaseStatusWithCoSignerReturnedByReviewer, nil
	case cs == domain.FlowNotSent && rv == domain.FlowReturned:
		return domain.CaseStatusReturnedByReviewer, nil
	case cs == domain.FlowSent && rv == domain.FlowNotSent:
		return domain.CaseStatusWithCoSigner, nil
	case cs == domain.FlowNotSent && rv == domain.FlowSent:
		return domain.CaseStatusWithReviewer, nil
	}
	// A returned co-signer flow has no defined status.
	return "", domain.ErrUnclassifiedCaseStatus
}

// ClassifyDocumentType derives the policy document type from the document's
// concrete variant. Smart documents whose template marks them as reviewer
// questions or answers classify as such rather than as generic smart
// documents.
func ClassifyDocumentType(d *domain.Document) domain.DocumentType {
	switch d.Variant {
	case domain.VariantArchived:
		return domain.DocTypeArchived
	case domain.VariantUploaded:
		return domain.DocTypeUploaded
	}
	if d.TemplateID != nil {
		switch *d.TemplateID {
		case domain.TemplateReviewerQuestions:
			return domain.DocTypeReviewerQuestions
		case domain.TemplateReviewerAnswers:
			return domain.DocTypeReviewerAnswers
		}
	}
	return domain.DocTypeSmart
}

// ClassifyParent derives the parent kind from the parent document, or
// ParentNone when the document is top-level. Archived and reviewer-answer
// documents can never be parents; deriving them as one is a hard failure, not
// a policy-table lookup.
func ClassifyParent(parent *domain.Document) (domain.ParentType, error) {
	if parent == nil {
		return domain.ParentNone, nil
	}
	switch ClassifyDocumentType(parent) {
	case domain.DocTypeArchived:
		return "", domain.ErrArchivedParent
	case domain.DocTypeReviewerAnswers:
		return "", domain.ErrAnswersParent
	case domain.DocTypeReviewerQuestions:
		return domain.ParentReviewerQuestions, nil
	case domain.DocTypeUploaded:
		return domain.ParentUploaded, nil
	}
	return domain.ParentSmart, nil
}

func idEquals(assigned *uuid.UUID, userID uuid.UUID) bool {
	return assigned != nil && *assigned == userID
}
