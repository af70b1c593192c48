package mapping

import (
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/SscSPs/salary_ledger/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:      d.EntryID,
		EmployeeID:   d.EmployeeID,
		Amount:       d.Amount,
		EntryDate:    FormatDate(d.Date),
		RecordedTime: d.Time.String(),
		Note:         d.Note,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) (domain.LedgerEntry, error) {
	date, err := ParseDate(m.EntryDate)
	if err != nil {
		return domain.LedgerEntry{}, err
	}
	tod, err := domain.ParseTimeOfDay(m.RecordedTime)
	if err != nil {
		return domain.LedgerEntry{}, err
	}
	return domain.LedgerEntry{
		EntryID:    m.EntryID,
		EmployeeID: m.EmployeeID,
		Amount:     m.Amount,
		Date:       date,
		Time:       tod,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}, nil
}

// ToDomainLedgerEntrySlice converts model rows to domain entries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) ([]domain.LedgerEntry, error) {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		d, err := ToDomainLedgerEntry(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

// ToDomainLedgerEntryWithEmployeeSlice converts joined rows to domain entries
func ToDomainLedgerEntryWithEmployeeSlice(ms []models.LedgerEntryWithEmployee) ([]domain.LedgerEntryWithEmployee, error) {
	ds := make([]domain.LedgerEntryWithEmployee, len(ms))
	for i, m := range ms {
		entry, err := ToDomainLedgerEntry(m.LedgerEntry)
		if err != nil {
			return nil, err
		}
		ds[i] = domain.LedgerEntryWithEmployee{
			LedgerEntry:         entry,
			EmployeeName:        m.EmployeeName,
			EmployeeDesignation: m.EmployeeDesignation,
		}
	}
	return ds, nil
}
