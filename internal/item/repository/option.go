package repository

import "trade-custody/internal/item"

// SetItemStatusOptions holds parameters for moving an Item to a new status.
type SetItemStatusOptions struct {
	ID     int64
	Status item.Status
}

// ListItemsOptions holds filter and pagination parameters for listing Items.
type ListItemsOptions struct {
	Status item.Status
	Limit  int
	Offset int
}

// UpsertItemOptions holds parameters for inserting or replacing an Item.
type UpsertItemOptions struct {
	ID     int64
	Title  string
	Status item.Status
}
