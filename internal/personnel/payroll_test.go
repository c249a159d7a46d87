package personnel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/bistro/internal/personnel"
)

func TestEmployee_NetSalary(t *testing.T) {
	type testCase struct {
		name     string
		employee personnel.Employee
		want     int64
	}

	tests := []testCase{
		{
			name:     "DailyRate",
			employee: personnel.Employee{SalaryPerDay: 2000, DaysWorked: 22, Absences: 1, Advance: 5000},
			want:     37000,
		},
		{
			name:     "FixedIgnoresAbsences",
			employee: personnel.Employee{FixedMonthlySalary: new(int64(120000)), Advance: 10000, Absences: 4, SalaryPerDay: 3000},
			want:     110000,
		},
		{
			name:     "ZeroFixedFallsBackToRate",
			employee: personnel.Employee{FixedMonthlySalary: new(int64(0)), SalaryPerDay: 1000, DaysWorked: 3},
			want:     3000,
		},
		{
			name:     "NegativeIsPreserved",
			employee: personnel.Employee{SalaryPerDay: 1000, DaysWorked: 1, Advance: 5000},
			want:     -4000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.employee.NetSalary())
		})
	}
}

func TestEmployee_NetSalaryFormula(t *testing.T) {
	for worked := 0; worked <= 31; worked += 7 {
		for absences := 0; absences <= 5; absences++ {
			e := personnel.Employee{SalaryPerDay: 1750, DaysWorked: worked, Absences: absences, Advance: 900}
			assert.Equal(t, int64(worked)*1750-int64(absences)*1750-900, e.NetSalary())
		}
	}
}

func TestEmployee_Payslip(t *testing.T) {
	e := personnel.Employee{SalaryPerDay: 2000, DaysWorked: 22, Absences: 1, Advance: 5000}

	assert.Equal(t, personnel.Payslip{
		Gross:            44000,
		AbsenceDeduction: 2000,
		Advance:          5000,
		Net:              37000,
	}, e.Payslip())
}

func TestTotalNetSalary_SkipsRemoved(t *testing.T) {
	employees := []*personnel.Employee{
		{SalaryPerDay: 1000, DaysWorked: 10},
		{SalaryPerDay: 1000, DaysWorked: 10, Deleted: true},
		{FixedMonthlySalary: new(int64(50000))},
	}

	assert.Equal(t, int64(60000), personnel.TotalNetSalary(employees))
}
