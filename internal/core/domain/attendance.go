package domain

import (
	"fmt"
	"strings"
	"time"
)

// AttendanceStatus is the daily marking for an employee.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLeave   AttendanceStatus = "leave"
	StatusHalfDay AttendanceStatus = "half_day"
)

// AttendanceStatuses lists every valid status in display order.
var AttendanceStatuses = []AttendanceStatus{StatusPresent, StatusAbsent, StatusLeave, StatusHalfDay}

// ParseAttendanceStatus normalizes user input ("Present", "half-day", "Half Day")
// into an AttendanceStatus.
func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for _, st := range AttendanceStatuses {
		if string(st) == norm {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown attendance status %q", s)
}

func (s AttendanceStatus) IsValid() bool {
	_, err := ParseAttendanceStatus(string(s))
	return err == nil
}

// AttendanceRecord is the single status of one employee on one day.
type AttendanceRecord struct {
	RecordID   int64            `json:"recordID"`
	EmployeeID int64            `json:"employeeID"`
	Date       time.Time        `json:"date"`
	Status     AttendanceStatus `json:"status"`
	CheckIn    *TimeOfDay       `json:"checkIn,omitempty"`
	CheckOut   *TimeOfDay       `json:"checkOut,omitempty"`
	Note       string           `json:"note"`
	MarkedBy   string           `json:"markedBy"`
	AuditFields
}

// AttendanceMark is one line of a marking batch. An empty Status means the
// employee was left unmarked.
type AttendanceMark struct {
	EmployeeID int64
	Status     string
	CheckIn    *TimeOfDay
	CheckOut   *TimeOfDay
	Note       string
}

// AttendanceCounts tallies records by status.
type AttendanceCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
	HalfDay int `json:"halfDay"`
}

// Add counts one record of the given status.
func (c *AttendanceCounts) Add(status AttendanceStatus) {
	switch status {
	case StatusPresent:
		c.Present++
	case StatusAbsent:
		c.Absent++
	case StatusLeave:
		c.Leave++
	case StatusHalfDay:
		c.HalfDay++
	}
}

// Total is the number of marked days.
func (c AttendanceCounts) Total() int {
	return c.Present + c.Absent + c.Leave + c.HalfDay
}
