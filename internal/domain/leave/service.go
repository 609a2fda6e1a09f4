package leave

import (
	"context"
)

type LeaveService interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (Leave, error)
	Approve(ctx context.Context, req ApproveLeaveRequest) (Leave, error)
	Reject(ctx context.Context, req RejectLeaveRequest) (Leave, error)
	Get(ctx context.Context, id int64) (Leave, error)
}
