package accesspolicy_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"klagedok/internal/accesspolicy"
	"klagedok/internal/domain"
)

func caseWith(mut func(c *domain.Case)) *domain.Case {
	c := &domain.Case{
		ID:           uuid.New(),
		CaseNumber:   "2026-000123",
		CoSignerFlow: domain.FlowNotSent,
		ReviewerFlow: domain.FlowNotSent,
	}
	if mut != nil {
		mut(c)
	}
	return c
}

func userWith(caps ...domain.Capability) *domain.User {
	return &domain.User{
		ID:           uuid.New(),
		Email:        "saksbehandler@example.com",
		Capabilities: domain.Capabilities(caps),
	}
}

func TestClassifyCaseRole_AssignedCaseworker(t *testing.T) {
	user := userWith(domain.CapabilityCaseworker)
	c := caseWith(func(c *domain.Case) {
		c.CaseworkerID = &user.ID
	})

	role, err := accesspolicy.ClassifyCaseRole(c, user)

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAssignedCaseworker, role)
}

func TestClassifyCaseRole_FinalizedDemotesCaseworkerAssignment(t *testing.T) {
	// Once the case is completed, the caseworker assignment no longer grants
	// the assigned-caseworker role; the user falls through to a generic role.
	user := userWith(domain.CapabilityCaseworker)
	now := time.Now()
	c := caseWith(func(c *domain.Case) {
		c.CaseworkerID = &user.ID
		c.FinalizedAt = &now
	})

	role, err := accesspolicy.ClassifyCaseRole(c, user)

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleGenericCaseworker, role)
}

func TestClassifyCaseRole_AssignmentBeatsCapability(t *testing.T) {
	// An assigned co-signer holding the reviewer capability still classifies
	// by the assignment, not the capability.
	user := userWith(domain.CapabilityReviewer)
	c := caseWith(func(c *domain.Case) {
		c.CoSignerID = &user.ID
	})

	role, err := accesspolicy.ClassifyCaseRole(c, user)

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAssignedCoSigner, role)
}

func TestClassifyCaseRole_AssignedReviewer(t *testing.T) {
	user := userWith(domain.CapabilityReviewer)
	c := caseWith(func(c *domain.Case) {
		c.ReviewerID = &user.ID
	})

	role, err := accesspolicy.ClassifyCaseRole(c, user)

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAssignedReviewer, role)
}

func TestClassifyCaseRole_ReviewerCapabilityBeatsCaseworker(t *testing.T) {
	user := userWith(domain.CapabilityCaseworker, domain.CapabilityReviewer)
	c := caseWith(nil)

	role, err := accesspolicy.ClassifyCaseRole(c, user)

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleGenericReviewer, role)
}

func TestClassifyCaseRole_NoRole(t *testing.T) {
	user := userWith()
	c := caseWith(nil)

	_, err := accesspolicy.ClassifyCaseRole(c, user)

	assert.ErrorIs(t, err, domain.ErrNoCaseRole)
}

func TestClassifyCaseStatus(t *testing.T) {
	cwID := uuid.New()
	now := time.Now()

	tests := []struct {
		name  string
		mut   func(c *domain.Case)
		want  domain.CaseStatus
		errIs error
	}{
		{"open when unassigned", nil, domain.CaseStatusOpen, nil},
		{"with caseworker", func(c *domain.Case) {
			c.CaseworkerID = &cwID
		}, domain.CaseStatusWithCaseworker, nil},
		{"with co-signer", func(c *domain.Case) {
			c.CaseworkerID = &cwID
			c.CoSignerFlow = domain.FlowSent
		}, domain.CaseStatusWithCoSigner, nil},
		{"with reviewer", func(c *domain.Case) {
			c.CaseworkerID = &cwID
			c.ReviewerFlow = domain.FlowSent
		}, domain.CaseStatusWithReviewer, nil},
		{"returned by reviewer", func(c *domain.Case) {
			c.CaseworkerID = &cwID
			c.ReviewerFlow = domain.FlowReturned
		}, domain.CaseStatusReturnedByReviewer, nil},
		{"with co-signer and reviewer", func(c *domain.Case) {
			c.CaseworkerID = &cwID
			c.CoSignerFlow = domain.FlowSent
			c.ReviewerFlow = domain.FlowSent
		}, domain.CaseStatusWithCoSignerAndReviewer, nil},
		{"with co-signer, returned by reviewer", func(c *domain.Case) {
			c.CaseworkerID = &cwID
			c.CoSignerFlow = domain.FlowSent
			c.ReviewerFlow = domain.FlowReturned
		}, domain.CaseStatusWithCoSignerReturnedByReviewer, nil},
		{"completed beats everything", func(c *domain.Case) {
			c.CaseworkerID = &cwID
			c.CoSignerFlow = domain.FlowSent
			c.FinalizedAt = &now
		}, domain.CaseStatusCompleted, nil},
		{"returned co-signer flow is unclassified", func(c *domain.Case) {
			c.CaseworkerID = &cwID
			c.CoSignerFlow = domain.FlowReturned
		}, "", domain.ErrUnclassifiedCaseStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := accesspolicy.ClassifyCaseStatus(caseWith(tt.mut))
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestClassifyDocumentType(t *testing.T) {
	questions := domain.TemplateReviewerQuestions
	answers := domain.TemplateReviewerAnswers
	other := "expert-statement"

	tests := []struct {
		name string
		doc  domain.Document
		want domain.DocumentType
	}{
		{"smart without template", domain.Document{Variant: domain.VariantSmart}, domain.DocTypeSmart},
		{"smart with ordinary template", domain.Document{Variant: domain.VariantSmart, TemplateID: &other}, domain.DocTypeSmart},
		{"reviewer questions", domain.Document{Variant: domain.VariantSmart, TemplateID: &questions}, domain.DocTypeReviewerQuestions},
		{"reviewer answers", domain.Document{Variant: domain.VariantSmart, TemplateID: &answers}, domain.DocTypeReviewerAnswers},
		{"uploaded", domain.Document{Variant: domain.VariantUploaded}, domain.DocTypeUploaded},
		{"archived", domain.Document{Variant: domain.VariantArchived}, domain.DocTypeArchived},
		{"archived ignores template", domain.Document{Variant: domain.VariantArchived, TemplateID: &questions}, domain.DocTypeArchived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accesspolicy.ClassifyDocumentType(&tt.doc))
		})
	}
}

func TestClassifyParent(t *testing.T) {
	questions := domain.TemplateReviewerQuestions
	answers := domain.TemplateReviewerAnswers

	t.Run("top-level document", func(t *testing.T) {
		parent, err := accesspolicy.ClassifyParent(nil)
		assert.NoError(t, err)
		assert.Equal(t, domain.ParentNone, parent)
	})

	t.Run("smart parent", func(t *testing.T) {
		parent, err := accesspolicy.ClassifyParent(&domain.Document{Variant: domain.VariantSmart})
		assert.NoError(t, err)
		assert.Equal(t, domain.ParentSmart, parent)
	})

	t.Run("uploaded parent", func(t *testing.T) {
		parent, err := accesspolicy.ClassifyParent(&domain.Document{Variant: domain.VariantUploaded})
		assert.NoError(t, err)
		assert.Equal(t, domain.ParentUploaded, parent)
	})

	t.Run("reviewer-questions parent", func(t *testing.T) {
		parent, err := accesspolicy.ClassifyParent(&domain.Document{Variant: domain.VariantSmart, TemplateID: &questions})
		assert.NoError(t, err)
		assert.Equal(t, domain.ParentReviewerQuestions, parent)
	})

	t.Run("archived parent is a hard error", func(t *testing.T) {
		_, err := accesspolicy.ClassifyParent(&domain.Document{Variant: domain.VariantArchived})
		assert.ErrorIs(t, err, domain.ErrArchivedParent)
	})

	t.Run("answers parent is a hard error", func(t *testing.T) {
		_, err := accesspolicy.ClassifyParent(&domain.Document{Variant: domain.VariantSmart, TemplateID: &answers})
		assert.ErrorIs(t, err, domain.ErrAnswersParent)
	})
}
