package usecase

import (
	"context"

	"trade-custody/internal/item"
	repo "trade-custody/internal/item/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (item.DetailOutput, error) {
	it, found, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetItem: %v", err)
		return item.DetailOutput{}, err
	}
	if !found {
		return item.DetailOutput{}, item.ErrItemNotFound
	}
	return item.DetailOutput{Item: it}, nil
}

// List returns a paginated list of Items.
func (uc *implUseCase) List(ctx context.Context, input item.ListInput) (item.ListOutput, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return item.ListOutput{}, item.ErrInvalidStatus
	}
	limit := uc.normalizeLimit(input.Limit)
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Status: input.Status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListOutput{}, err
	}

	return item.ListOutput{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// Audits returns the custody history of one Item.
func (uc *implUseCase) Audits(ctx context.Context, id int64) (item.AuditsOutput, error) {
	if _, err := uc.Detail(ctx, id); err != nil {
		return item.AuditsOutput{}, err
	}
	entries, err := uc.repo.ListAudits(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Audits ListAudits: %v", err)
		return item.AuditsOutput{}, err
	}
	return item.AuditsOutput{Entries: entries}, nil
}
