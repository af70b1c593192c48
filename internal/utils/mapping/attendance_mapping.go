package mapping

import (
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/SscSPs/salary_ledger/internal/models"
)

// ToModelAttendanceRecord converts a domain AttendanceRecord to a model row
func ToModelAttendanceRecord(d domain.AttendanceRecord) models.AttendanceRecord {
	return models.AttendanceRecord{
		RecordID:   d.RecordID,
		EmployeeID: d.EmployeeID,
		RecordDate: FormatDate(d.Date),
		Status:     string(d.Status),
		CheckIn:    toNullTime(d.CheckIn),
		CheckOut:   toNullTime(d.CheckOut),
		Note:       d.Note,
		MarkedBy:   d.MarkedBy,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainAttendanceRecord converts a model row to a domain AttendanceRecord
func ToDomainAttendanceRecord(m models.AttendanceRecord) (domain.AttendanceRecord, error) {
	date, err := ParseDate(m.RecordDate)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	status, err := domain.ParseAttendanceStatus(m.Status)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	checkIn, err := fromNullTime(m.CheckIn)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	checkOut, err := fromNullTime(m.CheckOut)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	return domain.AttendanceRecord{
		RecordID:   m.RecordID,
		EmployeeID: m.EmployeeID,
		Date:       date,
		Status:     status,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Note:       m.Note,
		MarkedBy:   m.MarkedBy,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}, nil
}

// ToDomainAttendanceRecordSlice converts model rows to domain records
func ToDomainAttendanceRecordSlice(ms []models.AttendanceRecord) ([]domain.AttendanceRecord, error) {
	ds := make([]domain.AttendanceRecord, len(ms))
	for i, m := range ms {
		d, err := ToDomainAttendanceRecord(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
