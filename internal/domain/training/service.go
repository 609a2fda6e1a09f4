package training

import "context"

type TrainingService interface {
	Enroll(ctx context.Context, req EnrollRequest) (Training, error)
	CancelEnrollment(ctx context.Context, trainingID, employeeID int64) (Training, error)
	Get(ctx context.Context, id int64) (Training, error)
}
