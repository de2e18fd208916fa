package domain

import "github.com/shopspring/decimal"

// EmployeeRecord represents a single timesheet entry read from a CSV file.
// The ID is treated as opaque text; it is not validated for uniqueness.
type EmployeeRecord struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Department string          `json:"department"` // grouping key, may be empty
	Hours      decimal.Decimal `json:"hours_worked"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

// Pay returns the payout for this record (hours * rate).
func (e EmployeeRecord) Pay() decimal.Decimal {
	return e.Hours.Mul(e.HourlyRate)
}
