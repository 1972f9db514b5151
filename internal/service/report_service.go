package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"klagedok/internal/csvexport"
	"klagedok/internal/port"
)

// ReportService exports the access matrix for a case: every document with the
// principals currently permitted to write to it.
type ReportService interface {
	WriteAccessMatrixXLSX(ctx context.Context, caseID uuid.UUID, w io.Writer) error
	WriteAccessMatrixCSV(ctx context.Context, caseID uuid.UUID, w io.Writer) error
}

type reportService struct {
	docRepo   port.DocumentRepository
	accessSvc AccessService
}

// NewReportService creates a new ReportService implementation.
func NewReportService(docRepo port.DocumentRepository, accessSvc AccessService) ReportService {
	return &reportService{docRepo: docRepo, accessSvc: accessSvc}
}

func (s *reportService) rows(ctx context.Context, caseID uuid.UUID) ([]csvexport.Row, error) {
	docs, err := s.docRepo.ListByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	matrix, err := s.accessSvc.PermittedWriters(ctx, caseID)
	if err != nil {
		return nil, err
	}

	writersByDoc := make(map[uuid.UUID][]string, len(matrix))
	for _, entry := range matrix {
		names := make([]string, 0, len(entry.Writers))
		for _, w := range entry.Writers {
			names = append(names, w.FullName)
		}
		writersByDoc[entry.DocumentID] = names
	}

	rows := make([]csvexport.Row, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		rows = append(rows, csvexport.Row{
			DocumentName: doc.Name,
			Kind:         string(doc.Kind),
			Variant:      string(doc.Variant),
			Finished:     doc.Finished,
			Writers:      writersByDoc[doc.ID],
		})
	}
	return rows, nil
}

func (s *reportService) WriteAccessMatrixCSV(ctx context.Context, caseID uuid.UUID, w io.Writer) error {
	rows, err := s.rows(ctx, caseID)
	if err != nil {
		return err
	}

	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("reportService.WriteAccessMatrixCSV: %w", err)
	}
	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("reportService.WriteAccessMatrixCSV: %w", err)
	}
	if err := cw.WriteRows(rows); err != nil {
		return fmt.Errorf("reportService.WriteAccessMatrixCSV: %w", err)
	}
	return cw.Flush()
}

func (s *reportService) WriteAccessMatrixXLSX(ctx context.Context, caseID uuid.UUID, w io.Writer) error {
	rows, err := s.rows(ctx, caseID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Access"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := []interface{}{"Document Name", "Document Kind", "Document Variant", "Finished", "Permitted Writers"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("reportService.WriteAccessMatrixXLSX: %w", err)
	}

	for i := range rows {
		r := &rows[i]
		finished := "no"
		if r.Finished {
			finished = "yes"
		}
		values := []interface{}{r.DocumentName, r.Kind, r.Variant, finished, strings.Join(r.Writers, "; ")}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("reportService.WriteAccessMatrixXLSX: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("reportService.WriteAccessMatrixXLSX: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("reportService.WriteAccessMatrixXLSX: %w", err)
	}
	return nil
}
