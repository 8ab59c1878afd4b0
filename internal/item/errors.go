package item

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrForbidden      = errors.New("forbidden")
	ErrItemNotFound   = errors.New("item not found")
	ErrCorruptStatus  = errors.New("stored item status is corrupt")

	ErrEmptyItemIDs      = fmt.Errorf("%w: itemIds must be a non-empty list", ErrInvalidRequest)
	ErrInvalidAction     = fmt.Errorf("%w: status must be one of pending, delivered, delivered_to_user", ErrInvalidRequest)
	ErrMissingActingUser = fmt.Errorf("%w: deliveredByUserId is required", ErrInvalidRequest)
	ErrInvalidRole       = fmt.Errorf("%w: userRole must be ADMIN or VOLUNTEER", ErrInvalidRequest)
	ErrInvalidStatus     = fmt.Errorf("%w: unknown item status", ErrInvalidRequest)
)

// ForbiddenError aborts a whole batch: the caller tried to move an item back
// toward pending without being ADMIN.
type ForbiddenError struct {
	ItemID int64
	Title  string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("only ADMIN may revert item %d (%s) toward pending", e.ItemID, e.Title)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
