package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"salary-reporter/internal/domain"
)

// PayoutGenerator groups employee records by department and computes per-row
// and per-department payouts.
type PayoutGenerator struct{}

func NewPayoutGenerator() *PayoutGenerator {
	return &PayoutGenerator{}
}

// Generate produces a *domain.PayoutReport. Departments are ordered by first
// appearance in the record sequence, employees by order of appearance within
// their department. Records with an empty department are grouped under the
// empty-string key.
func (g *PayoutGenerator) Generate(records []domain.EmployeeRecord) (any, error) {
	payout := &domain.PayoutReport{}
	byName := make(map[string]int)

	for _, rec := range records {
		idx, ok := byName[rec.Department]
		if !ok {
			idx = len(payout.Departments)
			byName[rec.Department] = idx
			payout.Departments = append(payout.Departments, domain.DepartmentPayout{
				Name:       rec.Department,
				TotalHours: decimal.Zero,
				TotalPay:   decimal.Zero,
			})
		}

		pay := rec.Pay()
		dept := &payout.Departments[idx]
		dept.Employees = append(dept.Employees, domain.EmployeePayout{
			Name:  rec.Name,
			Hours: rec.Hours,
			Rate:  rec.HourlyRate,
			Pay:   pay,
		})
		dept.TotalHours = dept.TotalHours.Add(rec.Hours)
		dept.TotalPay = dept.TotalPay.Add(pay)
	}

	return payout, nil
}

// Column widths are pinned so that output is byte-stable across runs.
const (
	prefixWidth = 16 // dash-filled prefix field on employee lines
	nameWidth   = 20
	hoursWidth  = 8
	payWidth    = 9 // includes the leading '$'
)

// PayoutConsoleFormatter renders a payout report as an aligned plain-text
// table, one section per department.
type PayoutConsoleFormatter struct{}

func NewPayoutConsoleFormatter() *PayoutConsoleFormatter {
	return &PayoutConsoleFormatter{}
}

// Format renders the report data produced by PayoutGenerator.
func (f *PayoutConsoleFormatter) Format(data any) (string, error) {
	payout, ok := data.(*domain.PayoutReport)
	if !ok {
		return "", fmt.Errorf("payout formatter received unexpected report data of type %T", data)
	}

	var b strings.Builder
	for i, dept := range payout.Departments {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(dept.Name)
		b.WriteString("\n")

		prefix := strings.Repeat("-", prefixWidth)
		for _, emp := range dept.Employees {
			fmt.Fprintf(&b, "%-*s %-*s %*s %*s\n",
				prefixWidth, prefix,
				nameWidth, emp.Name,
				hoursWidth, formatNumber(emp.Hours),
				payWidth, "$"+formatNumber(emp.Pay))
		}
		fmt.Fprintf(&b, "%-*s %-*s %*s %*s\n",
			prefixWidth, "",
			nameWidth, "",
			hoursWidth, formatNumber(dept.TotalHours),
			payWidth, "$"+formatNumber(dept.TotalPay))
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// formatNumber renders integral decimals without a fractional part and all
// other values with exactly two decimal places, rounded to cents.
func formatNumber(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.Truncate(0).String()
	}
	return d.StringFixed(2)
}
