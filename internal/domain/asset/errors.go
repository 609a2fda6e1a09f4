package asset

import (
	"fmt"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/apperror"
)

var (
	ErrAssetNotFound       = fmt.Errorf("asset %w", apperror.ErrNotFound)
	ErrAssignmentNotFound  = fmt.Errorf("asset assignment %w", apperror.ErrNotFound)
	ErrMaintenanceNotFound = fmt.Errorf("maintenance log %w", apperror.ErrNotFound)

	ErrAssetNotAvailable            = fmt.Errorf("%w: asset is not available", apperror.ErrInvalidState)
	ErrAssetDisposed                = fmt.Errorf("%w: asset is disposed", apperror.ErrInvalidState)
	ErrAssignmentNotActive          = fmt.Errorf("%w: assignment is not active", apperror.ErrInvalidState)
	ErrMaintenanceInvalidTransition = fmt.Errorf("%w: maintenance status does not allow this action", apperror.ErrInvalidState)
)
