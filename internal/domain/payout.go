package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoRecords is returned when, after loading all input files, no valid
// employee records remain to report on.
var ErrNoRecords = errors.New("no employee records found in the provided files")

// EmployeePayout holds one computed payout row of the payout report.
type EmployeePayout struct {
	Name  string          `json:"name"`
	Hours decimal.Decimal `json:"hours"`
	Rate  decimal.Decimal `json:"rate"`
	Pay   decimal.Decimal `json:"pay"`
}

// DepartmentPayout aggregates the payout rows of a single department.
// Employees appear in the order their records were read.
type DepartmentPayout struct {
	Name       string           `json:"name"`
	Employees  []EmployeePayout `json:"employees"`
	TotalHours decimal.Decimal  `json:"total_hours"`
	TotalPay   decimal.Decimal  `json:"total_pay"`
}

// PayoutReport is the processed data of the payout report. Departments are
// kept in a slice, ordered by first appearance in the record sequence.
type PayoutReport struct {
	Departments []DepartmentPayout `json:"departments"`
}
