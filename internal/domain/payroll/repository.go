package payroll

import "context"

type PayrollRepository interface {
	GetByID(ctx context.Context, id int64) (Payroll, error)
	List(ctx context.Context) ([]Payroll, error)
}
