package training

import "context"

type TrainingRepository interface {
	GetByID(ctx context.Context, id int64) (Training, error)
	GetByIDForUpdate(ctx context.Context, id int64) (Training, error)
	List(ctx context.Context) ([]Training, error)
	Update(ctx context.Context, training Training) error
}
