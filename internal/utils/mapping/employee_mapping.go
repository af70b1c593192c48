package mapping

import (
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/SscSPs/salary_ledger/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:        d.EmployeeID,
		Name:              d.Name,
		Designation:       d.Designation,
		Salary:            d.Salary,
		JoinDate:          FormatDate(d.JoinDate),
		SalaryPaymentDate: toNullDate(d.SalaryPaymentDate),
		TotalWithdrawn:    d.TotalWithdrawn,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) (domain.Employee, error) {
	joinDate, err := ParseDate(m.JoinDate)
	if err != nil {
		return domain.Employee{}, err
	}
	paymentDate, err := fromNullDate(m.SalaryPaymentDate)
	if err != nil {
		return domain.Employee{}, err
	}
	return domain.Employee{
		EmployeeID:        m.EmployeeID,
		Name:              m.Name,
		Designation:       m.Designation,
		Salary:            m.Salary,
		JoinDate:          joinDate,
		SalaryPaymentDate: paymentDate,
		TotalWithdrawn:    m.TotalWithdrawn,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}, nil
}

// ToDomainEmployeeSlice converts a slice of model Employees to domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) ([]domain.Employee, error) {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		d, err := ToDomainEmployee(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
