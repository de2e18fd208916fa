package usecase

import (
	"context"
	"fmt"

	"salary-reporter/internal/domain"
	"salary-reporter/internal/report"
)

// ReportUseCase orchestrates the report pipeline: load records, generate
// structured report data, format it as text.
type ReportUseCase struct {
	repo EmployeeRepository
}

// NewReportUseCase creates a new instance of the usecase.
func NewReportUseCase(repo EmployeeRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Run produces the formatted report of the given type over the given files.
// The report type is validated before any file I/O so that configuration
// errors fail fast. Zero valid records is an error: a report over nothing is
// more likely a mistake than a result.
func (uc *ReportUseCase) Run(ctx context.Context, paths []string, reportType string) (string, error) {
	cfg, err := report.Lookup(reportType)
	if err != nil {
		return "", err
	}

	records, err := uc.repo.LoadEmployees(ctx, paths)
	if err != nil {
		return "", fmt.Errorf("could not load employee records: %w", err)
	}
	if len(records) == 0 {
		return "", domain.ErrNoRecords
	}

	data, err := cfg.NewGenerator().Generate(records)
	if err != nil {
		return "", fmt.Errorf("could not generate %s report: %w", reportType, err)
	}

	text, err := cfg.NewFormatter().Format(data)
	if err != nil {
		return "", fmt.Errorf("could not format %s report: %w", reportType, err)
	}
	return text, nil
}
