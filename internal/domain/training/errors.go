package training

import (
	"fmt"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/apperror"
)

var (
	ErrTrainingNotFound    = fmt.Errorf("training %w", apperror.ErrNotFound)
	ErrParticipantNotFound = fmt.Errorf("participant %w", apperror.ErrNotFound)
	ErrTrainingClosed      = fmt.Errorf("%w: training is not open for enrollment", apperror.ErrInvalidState)
	ErrAlreadyEnrolled     = fmt.Errorf("%w: employee is already enrolled", apperror.ErrInvalidState)
	ErrTrainingFull        = fmt.Errorf("%w: training has no seats left", apperror.ErrInvalidState)
)
