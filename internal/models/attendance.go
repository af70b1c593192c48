package models

import "database/sql"

// AttendanceRecord is a row of the attendance_records table.
type AttendanceRecord struct {
	RecordID   int64          `db:"record_id"`
	EmployeeID int64          `db:"employee_id"`
	RecordDate string         `db:"record_date"`
	Status     string         `db:"status"`
	CheckIn    sql.NullString `db:"check_in"`
	CheckOut   sql.NullString `db:"check_out"`
	Note       string         `db:"note"`
	MarkedBy   string         `db:"marked_by"`
	AuditFields
}
