// file: internals/features/finance/reports/service/service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"pmics_backend/internals/configs"
	"pmics_backend/internals/features/finance/exports"
	"pmics_backend/internals/features/finance/reports/dto"
	m "pmics_backend/internals/features/finance/reports/model"
	"pmics_backend/internals/helpers/tabular"
)

// ReportSource: sumber data laporan (fungsi DB + tabel referensi).
type ReportSource interface {
	FinancialReport(ctx context.Context, fiscalYear int) ([]m.FinancialReportRow, error)
	Batches(ctx context.Context) ([]m.BatchModel, error)
	AcademicPeriods(ctx context.Context) ([]m.AcademicPeriodModel, error)
}

type Service struct {
	Source   ReportSource
	Exporter *exports.Exporter
	Cfg      configs.AppConfig
	Log      *zap.Logger
	Now      func() time.Time
}

func New(src ReportSource, ex *exports.Exporter, cfg configs.AppConfig, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Source: src, Exporter: ex, Cfg: cfg, Log: log.Named("reports"), Now: time.Now}
}

// Rows: fetch satu tahun fiskal lalu filter di memori. Data lama tidak disimpan.
func (s *Service) Rows(ctx context.Context, q dto.ReportQuery) ([]Row, error) {
	raw, err := s.Source.FinancialReport(ctx, q.FiscalYear)
	if err != nil {
		s.Log.Error("fetch financial report failed", zap.Int("fiscal_year", q.FiscalYear), zap.Error(err))
		return nil, err
	}
	rows := FilterRows(dto.FromModels(raw), q)
	s.Log.Debug("financial report loaded",
		zap.Int("fiscal_year", q.FiscalYear),
		zap.Int("fetched", len(raw)),
		zap.Int("filtered", len(rows)))
	return rows, nil
}

func (s *Service) Table(ctx context.Context, q dto.ReportQuery, sort tabular.SortState, page, perPage int) (TableResult, error) {
	raw, err := s.Source.FinancialReport(ctx, q.FiscalYear)
	if err != nil {
		s.Log.Error("fetch financial report failed", zap.Int("fiscal_year", q.FiscalYear), zap.Error(err))
		return TableResult{}, err
	}
	return BuildTable(dto.FromModels(raw), q, sort, page, perPage), nil
}

func (s *Service) Summary(ctx context.Context, q dto.ReportQuery) (dto.SummaryResponse, error) {
	rows, err := s.Rows(ctx, q)
	if err != nil {
		return dto.SummaryResponse{}, err
	}
	return SummaryOf(rows), nil
}

func (s *Service) Charts(ctx context.Context, q dto.ReportQuery) (dto.ChartsResponse, error) {
	rows, err := s.Rows(ctx, q)
	if err != nil {
		return dto.ChartsResponse{}, err
	}
	return Charts(rows), nil
}

// Reference: batch, program, period + seleksi yang sudah di-resolve.
func (s *Service) Reference(ctx context.Context, q dto.ReportQuery) (dto.ReferenceResponse, error) {
	batches, err := s.Source.Batches(ctx)
	if err != nil {
		s.Log.Error("fetch batches failed", zap.Error(err))
		return dto.ReferenceResponse{}, err
	}
	periods, err := s.Source.AcademicPeriods(ctx)
	if err != nil {
		s.Log.Error("fetch academic periods failed", zap.Error(err))
		return dto.ReferenceResponse{}, err
	}

	allBatches := dto.BatchOptionsFromModels(batches)
	sel, visibleBatches, visiblePeriods := ResolveSelection(q.Selection(), allBatches, dto.PeriodOptionsFromModels(periods))

	formats := []string{}
	for _, f := range s.Exporter.Formats() {
		formats = append(formats, string(f))
	}

	return dto.ReferenceResponse{
		FiscalYears:   FiscalYears(s.Now()),
		Programs:      Programs(allBatches),
		Batches:       visibleBatches,
		Periods:       visiblePeriods,
		Selection:     sel,
		Description:   FilterDescription(sel),
		ExportFormats: formats,
	}, nil
}

// Export: set terfilter → dokumen → writer pilihan (fallback CSV di Exporter).
func (s *Service) Export(ctx context.Context, q dto.ReportQuery, columns []string) (*exports.Result, error) {
	rows, err := s.Rows(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, exports.ErrNoData
	}
	doc, err := BuildDocument(s.Cfg, rows, q.Selection(), columns, s.Now())
	if err != nil {
		return nil, err
	}
	return s.Exporter.Export(doc, exports.ParseFormat(q.Format), ExportBasename(s.Cfg, q.Selection()))
}
