package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// UpdateStatus applies action to every item in the batch, in order.
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (UpdateStatusOutput, error)

	// Item lookups
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Audits(ctx context.Context, id int64) (AuditsOutput, error)
}
