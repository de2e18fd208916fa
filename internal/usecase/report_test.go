package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"salary-reporter/internal/domain"
	"salary-reporter/internal/report"
	"salary-reporter/internal/usecase"
	mock_usecase "salary-reporter/internal/usecase/mocks"
)

func TestReportUseCase_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paths := []string{"first.csv", "second.csv"}
	records := []domain.EmployeeRecord{
		{
			ID: "1", Email: "bob@example.com", Name: "Bob Smith", Department: "Design",
			Hours: decimal.NewFromInt(150), HourlyRate: decimal.NewFromInt(40),
		},
		{
			ID: "2", Email: "alice@example.com", Name: "Alice Johnson", Department: "Marketing",
			Hours: decimal.NewFromInt(160), HourlyRate: decimal.NewFromInt(50),
		},
	}

	tests := []struct {
		name       string
		reportType string
		records    []domain.EmployeeRecord
		repoError  error
		skipRepo   bool
		wantErr    error
		contains   []string
	}{
		{
			name:       "successful payout report",
			reportType: "payout",
			records:    records,
			contains:   []string{"Design", "Marketing", "Bob Smith", "$6000", "$8000"},
		},
		{
			name:       "unknown report type fails before any loading",
			reportType: "doesnotexist",
			skipRepo:   true,
			wantErr:    &report.UnknownReportTypeError{},
		},
		{
			name:       "loader error propagates",
			reportType: "payout",
			repoError:  errors.New("failed to open employee data file first.csv"),
		},
		{
			name:       "no valid records is an error",
			reportType: "payout",
			records:    nil,
			wantErr:    domain.ErrNoRecords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock_usecase.NewMockEmployeeRepository(ctrl)
			if !tt.skipRepo {
				repo.EXPECT().
					LoadEmployees(gomock.Any(), paths).
					Return(tt.records, tt.repoError)
			}

			uc := usecase.NewReportUseCase(repo)
			got, err := uc.Run(context.Background(), paths, tt.reportType)

			switch {
			case tt.repoError != nil:
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.repoError.Error())
				assert.Empty(t, got)
			case tt.wantErr != nil:
				assert.Error(t, err)
				var unknownErr *report.UnknownReportTypeError
				if errors.As(tt.wantErr, &unknownErr) {
					assert.ErrorAs(t, err, &unknownErr)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Empty(t, got)
			default:
				assert.NoError(t, err)
				for _, fragment := range tt.contains {
					assert.Contains(t, got, fragment)
				}
			}
		})
	}
}

func TestReportUseCase_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paths := []string{"data.csv"}
	records := []domain.EmployeeRecord{
		{
			ID: "1", Name: "Bob Smith", Department: "Design",
			Hours: decimal.NewFromInt(150), HourlyRate: decimal.NewFromInt(40),
		},
	}

	repo := mock_usecase.NewMockEmployeeRepository(ctrl)
	repo.EXPECT().LoadEmployees(gomock.Any(), paths).Return(records, nil).Times(2)

	uc := usecase.NewReportUseCase(repo)
	first, err := uc.Run(context.Background(), paths, "payout")
	assert.NoError(t, err)
	second, err := uc.Run(context.Background(), paths, "payout")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
