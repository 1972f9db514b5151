package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"klagedok/internal/accesspolicy"
	"klagedok/internal/domain"
	"klagedok/internal/service"
	"klagedok/mocks"
)

type accessFixture struct {
	docRepo  *mocks.MockDocumentRepo
	caseRepo *mocks.MockCaseRepo
	userRepo *mocks.MockUserRepo
	svc      service.AccessService

	caseworker *domain.User
	kase       *domain.Case
}

func newAccessFixture(t *testing.T) *accessFixture {
	t.Helper()
	f := &accessFixture{
		docRepo:  new(mocks.MockDocumentRepo),
		caseRepo: new(mocks.MockCaseRepo),
		userRepo: new(mocks.MockUserRepo),
	}
	f.svc = service.NewAccessService(f.docRepo, f.caseRepo, f.userRepo, testEvaluator(t))

	f.caseworker = &domain.User{
		ID:           uuid.New(),
		Email:        "tildelt@example.com",
		FullName:     "Tildelt Saksbehandler",
		Capabilities: domain.Capabilities{domain.CapabilityCaseworker},
	}
	f.kase = &domain.Case{
		ID:           uuid.New(),
		CaseworkerID: &f.caseworker.ID,
		CoSignerFlow: domain.FlowNotSent,
		ReviewerFlow: domain.FlowNotSent,
	}
	return f
}

func TestAccessService_CanPerform_Allowed(t *testing.T) {
	f := newAccessFixture(t)
	doc := &domain.Document{
		ID:          uuid.New(),
		CaseID:      f.kase.ID,
		Variant:     domain.VariantSmart,
		CreatorRole: domain.CreatorCaseworker,
	}

	f.docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	f.caseRepo.On("GetByID", mock.Anything, f.kase.ID).Return(f.kase, nil)

	decision, err := f.svc.CanPerform(context.Background(), f.caseworker, doc.ID, domain.ActionWrite)

	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Message)
}

func TestAccessService_CanPerform_DenialIsAResultNotAnError(t *testing.T) {
	f := newAccessFixture(t)
	other := &domain.User{
		ID:           uuid.New(),
		Capabilities: domain.Capabilities{domain.CapabilityCaseworker},
	}
	doc := &domain.Document{
		ID:          uuid.New(),
		CaseID:      f.kase.ID,
		Variant:     domain.VariantSmart,
		CreatorRole: domain.CreatorCaseworker,
	}

	f.docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	f.caseRepo.On("GetByID", mock.Anything, f.kase.ID).Return(f.kase, nil)

	decision, err := f.svc.CanPerform(context.Background(), other, doc.ID, domain.ActionWrite)

	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, accesspolicy.CategoryAuthorization, decision.Category)
	assert.Equal(t, domain.OutcomeAssignedRoleOnly, decision.Outcome)
	assert.NotEmpty(t, decision.Message)
}

func TestAccessService_CanPerform_NoCaseRoleIsAnError(t *testing.T) {
	f := newAccessFixture(t)
	outsider := &domain.User{ID: uuid.New()}
	doc := &domain.Document{ID: uuid.New(), CaseID: f.kase.ID, Variant: domain.VariantSmart}

	f.docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	f.caseRepo.On("GetByID", mock.Anything, f.kase.ID).Return(f.kase, nil)

	decision, err := f.svc.CanPerform(context.Background(), outsider, doc.ID, domain.ActionWrite)

	assert.Nil(t, decision)
	assert.ErrorIs(t, err, domain.ErrNoCaseRole)
}

func TestAccessService_PermittedWriters(t *testing.T) {
	f := newAccessFixture(t)

	generic := domain.User{
		ID:           uuid.New(),
		Email:        "annen@example.com",
		FullName:     "Annen Saksbehandler",
		Capabilities: domain.Capabilities{domain.CapabilityCaseworker},
	}
	reviewer := domain.User{
		ID:           uuid.New(),
		Email:        "rol@example.com",
		FullName:     "Rådgivende Overlege",
		Capabilities: domain.Capabilities{domain.CapabilityReviewer},
	}

	writable := domain.Document{
		ID:          uuid.New(),
		CaseID:      f.kase.ID,
		Name:        "Vedtaksbrev",
		Variant:     domain.VariantSmart,
		CreatorRole: domain.CreatorCaseworker,
	}
	finished := domain.Document{
		ID:          uuid.New(),
		CaseID:      f.kase.ID,
		Name:        "Ferdig notat",
		Variant:     domain.VariantSmart,
		CreatorRole: domain.CreatorCaseworker,
		Finished:    true,
	}

	f.caseRepo.On("GetByID", mock.Anything, f.kase.ID).Return(f.kase, nil)
	f.docRepo.On("ListByCase", mock.Anything, f.kase.ID).Return([]domain.Document{writable, finished}, nil)
	f.userRepo.On("ListByCapability", mock.Anything, domain.CapabilityCaseworker).
		Return([]domain.User{*f.caseworker, generic}, nil)
	f.userRepo.On("ListByCapability", mock.Anything, domain.CapabilityReviewer).
		Return([]domain.User{reviewer}, nil)

	result, err := f.svc.PermittedWriters(context.Background(), f.kase.ID)

	assert.NoError(t, err)
	assert.Len(t, result, 2)

	byDoc := make(map[uuid.UUID][]service.WriterEntry, len(result))
	for _, dw := range result {
		byDoc[dw.DocumentID] = dw.Writers
	}

	// Only the assigned caseworker may write; the generic caseworker and the
	// reviewer are excluded, and the finished document has no writers at all.
	assert.Len(t, byDoc[writable.ID], 1)
	assert.Equal(t, f.caseworker.ID, byDoc[writable.ID][0].UserID)
	assert.Empty(t, byDoc[finished.ID])
}

func TestAccessService_PermittedWriters_DeduplicatesCandidates(t *testing.T) {
	f := newAccessFixture(t)
	both := domain.User{
		ID:           uuid.New(),
		FullName:     "Begge Deler",
		Capabilities: domain.Capabilities{domain.CapabilityCaseworker, domain.CapabilityReviewer},
	}
	f.kase.CaseworkerID = &both.ID

	doc := domain.Document{
		ID:          uuid.New(),
		CaseID:      f.kase.ID,
		Variant:     domain.VariantSmart,
		CreatorRole: domain.CreatorCaseworker,
	}

	f.caseRepo.On("GetByID", mock.Anything, f.kase.ID).Return(f.kase, nil)
	f.docRepo.On("ListByCase", mock.Anything, f.kase.ID).Return([]domain.Document{doc}, nil)
	f.userRepo.On("ListByCapability", mock.Anything, domain.CapabilityCaseworker).
		Return([]domain.User{both}, nil)
	f.userRepo.On("ListByCapability", mock.Anything, domain.CapabilityReviewer).
		Return([]domain.User{both}, nil)

	result, err := f.svc.PermittedWriters(context.Background(), f.kase.ID)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Len(t, result[0].Writers, 1)
}
