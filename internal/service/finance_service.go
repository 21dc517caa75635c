package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/vbonduro/councilweb/internal/backend"
	"github.com/vbonduro/councilweb/internal/domain"
	"github.com/vbonduro/councilweb/internal/fallback"
	"github.com/vbonduro/councilweb/internal/paging"
)

// financeAPI is the subset of backend.FinanceClient that FinanceService requires.
type financeAPI interface {
	List(ctx context.Context, q backend.FinanceQuery) (backend.Page[domain.FinanceReport], error)
	Detail(ctx context.Context, id int64) (*domain.FinanceReport, error)
	FileURL(r domain.FinanceReport) string
	DownloadURL(id int64) string
}

type FinanceService struct {
	api    financeAPI
	logger *slog.Logger
	now    func() time.Time
}

func NewFinanceService(api financeAPI, logger *slog.Logger) *FinanceService {
	return &FinanceService{api: api, logger: logger, now: time.Now}
}

// FinanceRow is a report with its preview and download links resolved.
type FinanceRow struct {
	domain.FinanceReport
	PreviewURL  string
	DownloadURL string
}

type FinanceListing struct {
	Rows          []FinanceRow
	Pager         paging.Pager
	TotalElements int
	// Years are the year filter options; 0 means all years.
	Years []int
	// Fallback is set when the built-in report list is shown.
	Fallback bool
}

// List returns one page of reports. Any backend failure, or a body that is
// neither a page nor an array, yields the built-in list as a single page.
// The failure is logged, never shown.
func (s *FinanceService) List(ctx context.Context, q backend.FinanceQuery) *FinanceListing {
	listing := &FinanceListing{Years: fallback.FinanceYears(s.now())}

	p, err := s.api.List(ctx, q)
	switch {
	case err != nil:
		s.logger.Warn("finance reports unavailable, using built-in list", "error", err)
	case p.Unrecognised:
		s.logger.Warn("finance reports response not recognised, using built-in list")
	default:
		listing.Rows = s.rows(p.Content)
		listing.Pager = paging.NewPager(q.Page, p.TotalPages)
		listing.TotalElements = p.TotalElements
		return listing
	}

	reports := fallback.FinanceReports()
	listing.Rows = s.rows(reports)
	listing.Pager = paging.NewPager(0, 1)
	listing.TotalElements = len(reports)
	listing.Fallback = true
	return listing
}

// Preview returns the report to embed in the PDF viewer. The built-in
// report is served when the backend cannot be reached; a report the backend
// says does not exist returns nil, nil.
func (s *FinanceService) Preview(ctx context.Context, id int64) (*FinanceRow, error) {
	r, err := s.api.Detail(ctx, id)
	if err == nil {
		row := s.row(*r)
		return &row, nil
	}
	if isNotFound(err) {
		return nil, nil
	}

	s.logger.Warn("finance report unavailable, trying built-in list", "report_id", id, "error", err)
	for _, fb := range fallback.FinanceReports() {
		if fb.ID == id {
			row := s.row(fb)
			return &row, nil
		}
	}
	return nil, nil
}

func (s *FinanceService) rows(reports []domain.FinanceReport) []FinanceRow {
	rows := make([]FinanceRow, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, s.row(r))
	}
	return rows
}

func (s *FinanceService) row(r domain.FinanceReport) FinanceRow {
	return FinanceRow{
		FinanceReport: r,
		PreviewURL:    s.api.FileURL(r),
		DownloadURL:   s.api.DownloadURL(r.ID),
	}
}
