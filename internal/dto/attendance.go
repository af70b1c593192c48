package dto

import (
	"github.com/SscSPs/salary_ledger/internal/core/domain"
)

// MarkAttendanceRequest marks a batch of employees for one day.
type MarkAttendanceRequest struct {
	Date    string                   `json:"date" binding:"required,datetime=2006-01-02"`
	Entries []AttendanceEntryRequest `json:"entries" binding:"required,dive"`
}

// AttendanceEntryRequest is one employee's line. An empty status leaves the
// employee unmarked.
type AttendanceEntryRequest struct {
	EmployeeID int64   `json:"employeeID" binding:"required,gt=0"`
	Status     string  `json:"status" binding:"omitempty,attendance_status"`
	// CheckIn and CheckOut accept "15:04" or "15:04:05".
	CheckIn    *string `json:"checkIn" binding:"omitempty,time_of_day"`
	CheckOut   *string `json:"checkOut" binding:"omitempty,time_of_day"`
	Note       string  `json:"note" binding:"max=255"`
}

// MarkAttendanceResponse reports how many employees were marked.
type MarkAttendanceResponse struct {
	Marked int `json:"marked"`
}

// AttendanceRangeParams defines an inclusive date range query.
type AttendanceRangeParams struct {
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end" binding:"required,datetime=2006-01-02"`
}

// AttendanceReportResponse combines a summary with the underlying records.
type AttendanceReportResponse struct {
	Summary domain.AttendanceSummary  `json:"summary"`
	Records []domain.AttendanceRecord `json:"records"`
}
