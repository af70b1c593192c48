package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantStart string
		wantEnd   string
		wantDays  int
	}{
		{"january", 2025, time.January, "2025-01-01", "2025-02-01", 31},
		{"december rolls into next year", 2024, time.December, "2024-12-01", "2025-01-01", 31},
		{"leap february", 2024, time.February, "2024-02-01", "2024-03-01", 29},
		{"plain february", 2025, time.February, "2025-02-01", "2025-03-01", 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := domain.MonthRange(tt.year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start.Format(domain.DateLayout))
			assert.Equal(t, tt.wantEnd, end.Format(domain.DateLayout))
			assert.Equal(t, tt.wantDays, domain.DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestMonthRangeRejectsBadMonth(t *testing.T) {
	_, _, err := domain.MonthRange(2025, 13)
	assert.Error(t, err)
	_, _, err = domain.MonthRange(0, time.January)
	assert.Error(t, err)
	assert.Zero(t, domain.DaysInMonth(2025, 0))
}

func TestParseAttendanceStatus(t *testing.T) {
	tests := []struct {
		in   string
		want domain.AttendanceStatus
		ok   bool
	}{
		{"present", domain.StatusPresent, true},
		{"Absent", domain.StatusAbsent, true},
		{" leave ", domain.StatusLeave, true},
		{"half-day", domain.StatusHalfDay, true},
		{"Half Day", domain.StatusHalfDay, true},
		{"half_day", domain.StatusHalfDay, true},
		{"sick", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseAttendanceStatus(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttendanceCounts(t *testing.T) {
	var c domain.AttendanceCounts
	for _, s := range []domain.AttendanceStatus{domain.StatusPresent, domain.StatusPresent, domain.StatusHalfDay, domain.StatusLeave} {
		c.Add(s)
	}
	assert.Equal(t, domain.AttendanceCounts{Present: 2, Leave: 1, HalfDay: 1}, c)
	assert.Equal(t, 4, c.Total())
}

func TestTimeOfDay(t *testing.T) {
	tod, err := domain.ParseTimeOfDay("14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:30:00", tod.String())
	assert.Equal(t, "02:30 PM", tod.Format12h())

	withSeconds, err := domain.ParseTimeOfDay("09:05:07")
	require.NoError(t, err)
	assert.True(t, withSeconds.Before(tod))
	assert.False(t, tod.Before(withSeconds))

	_, err = domain.ParseTimeOfDay("25:00")
	assert.Error(t, err)

	raw, err := json.Marshal(withSeconds)
	require.NoError(t, err)
	assert.JSONEq(t, `"09:05:07"`, string(raw))

	var decoded domain.TimeOfDay
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, withSeconds, decoded)
}

func TestEmployeeBalance(t *testing.T) {
	e := domain.Employee{
		EmployeeID:     3,
		Salary:         decimal.NewFromInt(50000),
		TotalWithdrawn: decimal.NewFromInt(35000),
	}
	assert.True(t, e.Remaining().Equal(decimal.NewFromInt(15000)))
	assert.True(t, e.CanWithdraw(decimal.NewFromInt(15000)))
	assert.False(t, e.CanWithdraw(decimal.RequireFromString("15000.01")))
	assert.Equal(t, "EMP-0003", e.Code())
}

func TestSlipNumberAndSum(t *testing.T) {
	entries := []domain.LedgerEntry{
		{EntryID: 12, Amount: decimal.RequireFromString("100.25")},
		{EntryID: 13, Amount: decimal.RequireFromString("0.75")},
	}
	assert.Equal(t, "WS-000012", entries[0].SlipNumber())
	assert.True(t, domain.SumAmounts(entries).Equal(decimal.NewFromInt(101)))
	assert.True(t, domain.SumAmounts(nil).IsZero())
}
