package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"klagedok/internal/domain"
	"klagedok/internal/service"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Create(ctx context.Context, actor service.Actor, input *service.CreateDocumentInput) (*domain.Document, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.Document, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentService) UploadContent(ctx context.Context, actor service.Actor, input *service.UploadContentInput) error {
	args := m.Called(ctx, actor, input)
	return args.Error(0)
}

func (m *MockDocumentService) Rename(ctx context.Context, actor service.Actor, docID uuid.UUID, name string) error {
	args := m.Called(ctx, actor, docID, name)
	return args.Error(0)
}

func (m *MockDocumentService) ChangeKind(ctx context.Context, actor service.Actor, docID uuid.UUID, kind domain.DocumentKind) error {
	args := m.Called(ctx, actor, docID, kind)
	return args.Error(0)
}

func (m *MockDocumentService) Remove(ctx context.Context, actor service.Actor, docID uuid.UUID) error {
	args := m.Called(ctx, actor, docID)
	return args.Error(0)
}

func (m *MockDocumentService) Finish(ctx context.Context, actor service.Actor, docID uuid.UUID) error {
	args := m.Called(ctx, actor, docID)
	return args.Error(0)
}
