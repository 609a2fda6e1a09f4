package leave

import (
	"context"
)

// LeaveRepository persists leave requests. GetByIDForUpdate must lock the row
// until the surrounding transaction ends.
type LeaveRepository interface {
	Create(ctx context.Context, leave Leave) (Leave, error)
	GetByID(ctx context.Context, id int64) (Leave, error)
	GetByIDForUpdate(ctx context.Context, id int64) (Leave, error)
	List(ctx context.Context) ([]Leave, error)
	Update(ctx context.Context, leave Leave) error
}
