package mapping

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
)

// FormatDate renders a calendar date for storage.
func FormatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// ParseDate reads a stored calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored date %q: %w", s, err)
	}
	return t, nil
}

func toNullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: FormatDate(*t), Valid: true}
}

func fromNullDate(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := ParseDate(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toNullTime(t *domain.TimeOfDay) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.String(), Valid: true}
}

func fromNullTime(ns sql.NullString) (*domain.TimeOfDay, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
