package employee

import (
	"fmt"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/apperror"
)

var (
	ErrEmployeeNotFound = fmt.Errorf("employee %w", apperror.ErrNotFound)
	ErrEmployeeInactive = fmt.Errorf("%w: employee is not active", apperror.ErrInvalidState)
)
