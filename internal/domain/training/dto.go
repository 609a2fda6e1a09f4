package training

import (
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

type EnrollRequest struct {
	TrainingID     int64  `json:"-"`
	EmployeeID     int64  `json:"employee_id"`
	EnrollmentDate string `json:"enrollment_date"`
}

func (r *EnrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TrainingID <= 0 {
		errs.Add("training_id", "training_id is required")
	}
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}
	if !validator.IsEmpty(r.EnrollmentDate) {
		validator.RequiredDate(&errs, "enrollment_date", r.EnrollmentDate)
	}

	return errs.Err()
}
