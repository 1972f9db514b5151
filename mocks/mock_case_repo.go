package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"klagedok/internal/domain"
)

// MockCaseRepo is a mock implementation of port.CaseRepository.
type MockCaseRepo struct {
	mock.Mock
}

func (m *MockCaseRepo) GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockCaseRepo) List(ctx context.Context, offset, limit int) ([]domain.Case, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Case), args.Int(1), args.Error(2)
}
