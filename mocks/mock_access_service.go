package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"klagedok/internal/domain"
	"klagedok/internal/service"
)

// MockAccessService is a mock implementation of service.AccessService.
type MockAccessService struct {
	mock.Mock
}

func (m *MockAccessService) CanPerform(ctx context.Context, user *domain.User, docID uuid.UUID, action domain.DocumentAction) (*service.AccessDecision, error) {
	args := m.Called(ctx, user, docID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AccessDecision), args.Error(1)
}

func (m *MockAccessService) PermittedWriters(ctx context.Context, caseID uuid.UUID) ([]service.DocumentWriters, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.DocumentWriters), args.Error(1)
}
