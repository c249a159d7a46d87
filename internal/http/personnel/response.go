package personnel

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/personnel"
)

type presenceResponse struct {
	Date   string           `json:"date"`
	Status personnel.Status `json:"status"`
}

type employeeResponse struct {
	ID                 uuid.UUID          `json:"id"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	Role               string             `json:"role"`
	SalaryPerDay       int64              `json:"salary_per_day"`
	FixedMonthlySalary *int64             `json:"fixed_monthly_salary,omitempty"`
	DaysWorked         int                `json:"days_worked"`
	Absences           int                `json:"absences"`
	Advance            int64              `json:"advance"`
	SickAllowance      int                `json:"sick_allowance"`
	SickBalance        int                `json:"sick_balance"`
	Presences          []presenceResponse `json:"presences"`
	Payslip            personnel.Payslip  `json:"payslip"`
	Deleted            bool               `json:"deleted"`
	DeletedAt          *time.Time         `json:"deleted_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          *time.Time         `json:"updated_at,omitempty"`
}

func toResponse(e *personnel.Employee) employeeResponse {
	presences := make([]presenceResponse, 0, len(e.Presences))
	for _, p := range e.Presences {
		presences = append(presences, presenceResponse{Date: p.Date.Format(time.DateOnly), Status: p.Status})
	}

	return employeeResponse{
		ID:                 e.ID,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		Role:               e.Role,
		SalaryPerDay:       e.SalaryPerDay,
		FixedMonthlySalary: e.FixedMonthlySalary,
		DaysWorked:         e.DaysWorked,
		Absences:           e.Absences,
		Advance:            e.Advance,
		SickAllowance:      e.SickAllowance,
		SickBalance:        e.SickBalance,
		Presences:          presences,
		Payslip:            e.Payslip(),
		Deleted:            e.Deleted,
		DeletedAt:          e.DeletedAt,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func toResponseList(employees []*personnel.Employee) []employeeResponse {
	resp := make([]employeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = toResponse(e)
	}

	return resp
}
