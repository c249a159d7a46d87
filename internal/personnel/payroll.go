package personnel

// HasFixedSalary reports whether the monthly override is authoritative for gross pay.
func (e *Employee) HasFixedSalary() bool {
	return e.FixedMonthlySalary != nil && *e.FixedMonthlySalary > 0
}

func (e *Employee) GrossSalary() int64 {
	if e.HasFixedSalary() {
		return *e.FixedMonthlySalary
	}

	return int64(e.DaysWorked) * e.SalaryPerDay
}

// NetSalary is gross pay less absences and advances. Absences are not deducted
// from a fixed salary. The result is not floored and may be negative.
func (e *Employee) NetSalary() int64 {
	return e.Payslip().Net
}

type Payslip struct {
	Fixed            bool  `json:"fixed"`
	Gross            int64 `json:"gross"`
	AbsenceDeduction int64 `json:"absenceDeduction"`
	Advance          int64 `json:"advance"`
	Net              int64 `json:"net"`
}

func (e *Employee) Payslip() Payslip {
	p := Payslip{
		Fixed:   e.HasFixedSalary(),
		Gross:   e.GrossSalary(),
		Advance: e.Advance,
	}

	if !p.Fixed {
		p.AbsenceDeduction = int64(e.Absences) * e.SalaryPerDay
	}

	p.Net = p.Gross - p.AbsenceDeduction - p.Advance

	return p
}

// TotalNetSalary sums net pay over employees that have not been removed.
func TotalNetSalary(employees []*Employee) int64 {
	var total int64

	for _, e := range employees {
		if e.Deleted {
			continue
		}

		total += e.NetSalary()
	}

	return total
}
