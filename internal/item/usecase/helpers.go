package usecase

import (
	"trade-custody/internal/item"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// validateUpdateStatus checks the whole batch before any item is read.
func (uc *implUseCase) validateUpdateStatus(input item.UpdateStatusInput) error {
	if len(input.ItemIDs) == 0 {
		return item.ErrEmptyItemIDs
	}
	if !input.Action.IsValid() {
		return item.ErrInvalidAction
	}
	if input.ActingUserID == 0 {
		return item.ErrMissingActingUser
	}
	if !input.ActingRole.IsStaff() {
		return item.ErrInvalidRole
	}
	return nil
}

// normalizeLimit clamps a page size to (0, maxListLimit].
func (uc *implUseCase) normalizeLimit(limit int) int {
	if limit <= 0 || limit > maxListLimit {
		return defaultListLimit
	}
	return limit
}
