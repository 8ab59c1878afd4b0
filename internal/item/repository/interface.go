package repository

import (
	"context"

	"trade-custody/internal/item"
)

// Repository is the composed interface for the item custody data store.
type Repository interface {
	ItemRepository
	AuditRepository
}

// ItemRepository defines data access for Item custody records.
type ItemRepository interface {
	// GetItem returns found == false, with no error, when id is unknown.
	GetItem(ctx context.Context, id int64) (it item.Item, found bool, err error)
	SetItemStatus(ctx context.Context, opt SetItemStatusOptions) error
	// SetItemStatuses applies every change in order, or none of them.
	SetItemStatuses(ctx context.Context, opts []SetItemStatusOptions) error
	ListItems(ctx context.Context, opt ListItemsOptions) ([]item.Item, int, error)
	UpsertItem(ctx context.Context, opt UpsertItemOptions) error
}

// AuditRepository persists the transition audit trail.
type AuditRepository interface {
	RecordAudit(ctx context.Context, entry item.AuditEntry) error
	ListAudits(ctx context.Context, itemID int64) ([]item.AuditEntry, error)
}
