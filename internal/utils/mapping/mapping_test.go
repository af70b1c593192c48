package mapping_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/SscSPs/salary_ledger/internal/models"
	"github.com/SscSPs/salary_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeMappingKeepsOptionalPaymentDate(t *testing.T) {
	paid := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	e := domain.Employee{
		EmployeeID:        4,
		Name:              "Sara",
		Designation:       "Cashier",
		Salary:            decimal.NewFromInt(30000),
		JoinDate:          time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC),
		SalaryPaymentDate: &paid,
		TotalWithdrawn:    decimal.NewFromInt(1000),
	}

	m := mapping.ToModelEmployee(e)
	assert.Equal(t, "2023-07-01", m.JoinDate)
	assert.Equal(t, sql.NullString{String: "2025-01-05", Valid: true}, m.SalaryPaymentDate)

	back, err := mapping.ToDomainEmployee(m)
	require.NoError(t, err)
	require.NotNil(t, back.SalaryPaymentDate)
	assert.True(t, paid.Equal(*back.SalaryPaymentDate))

	m.SalaryPaymentDate = sql.NullString{}
	back, err = mapping.ToDomainEmployee(m)
	require.NoError(t, err)
	assert.Nil(t, back.SalaryPaymentDate)
}

func TestEmployeeMappingRejectsCorruptDate(t *testing.T) {
	_, err := mapping.ToDomainEmployee(models.Employee{JoinDate: "01/07/2023"})
	assert.Error(t, err)
}

func TestAttendanceMapping(t *testing.T) {
	m := models.AttendanceRecord{
		RecordID:   1,
		EmployeeID: 2,
		RecordDate: "2025-01-10",
		Status:     "half_day",
		CheckIn:    sql.NullString{String: "09:15:00", Valid: true},
	}

	d, err := mapping.ToDomainAttendanceRecord(m)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusHalfDay, d.Status)
	require.NotNil(t, d.CheckIn)
	assert.Equal(t, domain.TimeOfDay{Hour: 9, Minute: 15}, *d.CheckIn)
	assert.Nil(t, d.CheckOut)

	m.Status = "vacation"
	_, err = mapping.ToDomainAttendanceRecord(m)
	assert.Error(t, err)
}
