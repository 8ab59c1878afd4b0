package memory

import (
	"context"
	"sort"
	"time"

	"trade-custody/internal/item"
	repo "trade-custody/internal/item/repository"
)

// GetItem returns a copy of the stored Item.
func (r *implRepository) GetItem(ctx context.Context, id int64) (item.Item, bool, error) {
	if err := ctx.Err(); err != nil {
		return item.Item{}, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	return it, ok, nil
}

// SetItemStatus updates the status of an existing Item.
func (r *implRepository) SetItemStatus(ctx context.Context, opt repo.SetItemStatusOptions) error {
	return r.SetItemStatuses(ctx, []repo.SetItemStatusOptions{opt})
}

// SetItemStatuses checks every change before applying any, so an unknown id or
// invalid status leaves all Items as they were.
func (r *implRepository) SetItemStatuses(ctx context.Context, opts []repo.SetItemStatusOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, opt := range opts {
		if !opt.Status.IsValid() {
			return repo.ErrInvalidStatus
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, opt := range opts {
		if _, ok := r.items[opt.ID]; !ok {
			r.l.Warnf(ctx, "item/repository/memory.SetItemStatuses: item %d not found, nothing applied", opt.ID)
			return repo.ErrNotFound
		}
	}
	now := time.Now().UTC()
	for _, opt := range opts {
		it := r.items[opt.ID]
		it.Status = opt.Status
		it.UpdatedAt = now
		r.items[opt.ID] = it
	}
	return nil
}

// ListItems returns Items ordered by id, filtered by status when set.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]item.Item, 0, len(r.items))
	for _, it := range r.items {
		if opt.Status != "" && it.Status != opt.Status {
			continue
		}
		matched = append(matched, it)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	if opt.Offset >= total {
		return []item.Item{}, total, nil
	}
	matched = matched[opt.Offset:]
	if opt.Limit > 0 && opt.Limit < len(matched) {
		matched = matched[:opt.Limit]
	}
	return matched, total, nil
}

// UpsertItem inserts or replaces an Item.
func (r *implRepository) UpsertItem(ctx context.Context, opt repo.UpsertItemOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !opt.Status.IsValid() {
		return repo.ErrInvalidStatus
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[opt.ID] = item.Item{
		ID:        opt.ID,
		Title:     opt.Title,
		Status:    opt.Status,
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}
