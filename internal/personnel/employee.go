package personnel

import (
	"time"

	"github.com/google/uuid"
)

// Status is the attendance outcome recorded for one day.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusSick    Status = "sick"
	StatusOff     Status = "off"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusSick, StatusOff:
		return true
	}

	return false
}

// Presence is a single day of attendance. Dates are compared by calendar day.
type Presence struct {
	Date   time.Time `json:"date"`
	Status Status    `json:"status"`
}

// Employee holds identity, pay terms and the counters of the current period.
// DaysWorked, Absences and SickBalance are derived from Presences by Recount.
type Employee struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`

	SalaryPerDay       int64  `json:"salaryPerDay"`                 // cents
	FixedMonthlySalary *int64 `json:"fixedMonthlySalary,omitempty"` // cents, overrides the daily rate when positive

	DaysWorked    int        `json:"daysWorked"`
	Absences      int        `json:"absences"`
	Advance       int64      `json:"advance"` // cents
	SickAllowance int        `json:"sickAllowance"`
	SickBalance   int        `json:"sickBalance"`
	Presences     []Presence `json:"presences"`

	Deleted   bool       `json:"deleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Clone returns a deep copy, used when snapshotting employees into an archive.
func (e *Employee) Clone() *Employee {
	c := *e
	c.Presences = append([]Presence(nil), e.Presences...)

	if e.FixedMonthlySalary != nil {
		c.FixedMonthlySalary = new(*e.FixedMonthlySalary)
	}

	if e.DeletedAt != nil {
		c.DeletedAt = new(*e.DeletedAt)
	}

	if e.UpdatedAt != nil {
		c.UpdatedAt = new(*e.UpdatedAt)
	}

	return &c
}
