package leave

import (
	"fmt"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/apperror"
)

var (
	ErrLeaveRequestNotFound         = fmt.Errorf("leave request %w", apperror.ErrNotFound)
	ErrLeaveRequestAlreadyProcessed = fmt.Errorf("%w: leave request already processed", apperror.ErrInvalidState)
)
