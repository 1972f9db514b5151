package service

import (
	"context"

	"github.com/google/uuid"

	"klagedok/internal/accesspolicy"
	"klagedok/internal/domain"
	"klagedok/internal/port"
)

// CaseView is a case together with its derived workflow status.
type CaseView struct {
	domain.Case
	Status domain.CaseStatus `json:"status"`
}

// CaseService exposes read access to cases. Workflow mutations live in the
// collaborating case-workflow system.
type CaseService interface {
	GetByID(ctx context.Context, caseID uuid.UUID) (*CaseView, error)
	List(ctx context.Context, offset, limit int) ([]CaseView, int, error)
}

type caseService struct {
	caseRepo port.CaseRepository
}

// NewCaseService creates a new CaseService implementation.
func NewCaseService(caseRepo port.CaseRepository) CaseService {
	return &caseService{caseRepo: caseRepo}
}

func (s *caseService) GetByID(ctx context.Context, caseID uuid.UUID) (*CaseView, error) {
	kase, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	view, err := toView(kase)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *caseService) List(ctx context.Context, offset, limit int) ([]CaseView, int, error) {
	cases, total, err := s.caseRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	views := make([]CaseView, 0, len(cases))
	for i := range cases {
		view, err := toView(&cases[i])
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}
	return views, total, nil
}

func toView(kase *domain.Case) (*CaseView, error) {
	status, err := accesspolicy.ClassifyCaseStatus(kase)
	if err != nil {
		return nil, err
	}
	return &CaseView{Case: *kase, Status: status}, nil
}
