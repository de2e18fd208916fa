package gateway

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"salary-reporter/internal/config"
	"salary-reporter/internal/domain"
)

// CSVEmployeeRepository implements the EmployeeRepository interface for
// comma-delimited text files.
//
// Lines are split strictly on commas; there is no quoting or escaping, so a
// value containing a comma is read as two fields. This is a documented
// limitation of the input format, not something the loader tries to repair.
type CSVEmployeeRepository struct {
	logger *zap.Logger
}

// NewCSVEmployeeRepository creates a new repository instance. A nil logger
// disables row diagnostics.
func NewCSVEmployeeRepository(logger *zap.Logger) *CSVEmployeeRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVEmployeeRepository{logger: logger}
}

// LoadEmployees reads and parses every given file in order and returns the
// concatenated record sequence. A file that cannot be opened or whose header
// cannot be resolved aborts the whole load; a data row that cannot be parsed
// is skipped with a warning and processing continues.
func (r *CSVEmployeeRepository) LoadEmployees(ctx context.Context, paths []string) ([]domain.EmployeeRecord, error) {
	var records []domain.EmployeeRecord
	for _, path := range paths {
		fileRecords, err := r.loadFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, fileRecords...)
	}
	return records, nil
}

func (r *CSVEmployeeRepository) loadFile(path string) ([]domain.EmployeeRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open employee data file %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	header, headerLine, err := readHeader(scanner)
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	// Column order may differ between files, so the header is resolved
	// independently for each one.
	columns, err := config.ResolveColumns(header)
	if err != nil {
		return nil, fmt.Errorf("invalid header in %s: %w", path, err)
	}

	var records []domain.EmployeeRecord
	lineNo := headerLine
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record, err := parseRow(line, len(header), columns)
		if err != nil {
			r.logger.Warn("skipping unparseable row",
				zap.String("file", path),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	r.logger.Debug("loaded employee data file",
		zap.String("file", path),
		zap.Int("records", len(records)))
	return records, nil
}

// readHeader scans past blank lines to the header row and returns its cells
// together with its line number.
func readHeader(scanner *bufio.Scanner) ([]string, int, error) {
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return strings.Split(line, ","), lineNo, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, lineNo, err
	}
	return nil, lineNo, fmt.Errorf("file is empty or has no header")
}

func parseRow(line string, headerWidth int, columns map[config.Field]int) (domain.EmployeeRecord, error) {
	parts := strings.Split(line, ",")
	if len(parts) < headerWidth {
		return domain.EmployeeRecord{}, fmt.Errorf("row has %d fields, header has %d", len(parts), headerWidth)
	}
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	hours, err := parseNonNegative(parts[columns[config.FieldHours]], config.FieldHours)
	if err != nil {
		return domain.EmployeeRecord{}, err
	}
	rate, err := parseNonNegative(parts[columns[config.FieldRate]], config.FieldRate)
	if err != nil {
		return domain.EmployeeRecord{}, err
	}

	return domain.EmployeeRecord{
		ID:         parts[columns[config.FieldID]],
		Email:      parts[columns[config.FieldEmail]],
		Name:       parts[columns[config.FieldName]],
		Department: parts[columns[config.FieldDepartment]],
		Hours:      hours,
		HourlyRate: rate,
	}, nil
}

func parseNonNegative(value string, field config.Field) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("could not parse %s %q: %w", field, value, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%s must not be negative, got %q", field, value)
	}
	return d, nil
}
