package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"klagedok/internal/domain"
)

// MockDocumentRepo is a mock implementation of port.DocumentRepository.
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepo) GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.Document, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) ListChildren(ctx context.Context, parentID uuid.UUID) ([]domain.Document, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) Rename(ctx context.Context, docID uuid.UUID, name string) error {
	args := m.Called(ctx, docID, name)
	return args.Error(0)
}

func (m *MockDocumentRepo) SetKind(ctx context.Context, docID uuid.UUID, kind domain.DocumentKind) error {
	args := m.Called(ctx, docID, kind)
	return args.Error(0)
}

func (m *MockDocumentRepo) SetContentKey(ctx context.Context, docID uuid.UUID, key string) error {
	args := m.Called(ctx, docID, key)
	return args.Error(0)
}

func (m *MockDocumentRepo) SetFinished(ctx context.Context, docID uuid.UUID) error {
	args := m.Called(ctx, docID)
	return args.Error(0)
}

func (m *MockDocumentRepo) Delete(ctx context.Context, docID uuid.UUID) error {
	args := m.Called(ctx, docID)
	return args.Error(0)
}
