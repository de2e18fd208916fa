package usecase

import (
	"context"

	"salary-reporter/internal/domain"
)

// EmployeeRepository defines the interface for loading employee records.
// The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go EmployeeRepository
type EmployeeRepository interface {
	LoadEmployees(ctx context.Context, paths []string) ([]domain.EmployeeRecord, error)
}
