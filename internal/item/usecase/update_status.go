package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"trade-custody/internal/item"
	repo "trade-custody/internal/item/repository"
)

// plannedMove is one found item of a batch with its computed status.
type plannedMove struct {
	item     item.Item
	previous item.Status
	next     item.Status
}

// UpdateStatus applies input.Action to every item of the batch in input order.
//
// Nothing is written until the whole batch has been planned, so an InvalidRequest
// or Forbidden error leaves every item untouched. The planned changes are then
// stored in one all-or-nothing write. Unknown ids are skipped.
func (uc *implUseCase) UpdateStatus(ctx context.Context, input item.UpdateStatusInput) (item.UpdateStatusOutput, error) {
	if err := uc.validateUpdateStatus(input); err != nil {
		return item.UpdateStatusOutput{}, err
	}

	moves, err := uc.planMoves(ctx, input)
	if err != nil {
		return item.UpdateStatusOutput{}, err
	}

	changes := make([]repo.SetItemStatusOptions, 0, len(moves))
	for _, mv := range moves {
		if mv.next != mv.previous {
			changes = append(changes, repo.SetItemStatusOptions{ID: mv.item.ID, Status: mv.next})
		}
	}
	if len(changes) > 0 {
		if err := uc.repo.SetItemStatuses(ctx, changes); err != nil {
			uc.l.Errorf(ctx, "uc.UpdateStatus SetItemStatuses changes=%d: %v", len(changes), err)
			return item.UpdateStatusOutput{}, err
		}
	}

	batchID := uuid.New()
	updated := make([]item.UpdatedItem, 0, len(moves))
	for _, mv := range moves {
		uc.recordAudit(ctx, batchID, input, mv)

		updated = append(updated, item.UpdatedItem{
			ID:        mv.item.ID,
			NewStatus: mv.next,
			Title:     mv.item.Title,
		})
	}

	uc.l.Infof(ctx, "uc.UpdateStatus: batch=%s actor=%d action=%s requested=%d updated=%d",
		batchID, input.ActingUserID, input.Action, len(input.ItemIDs), len(updated))

	return item.UpdateStatusOutput{UpdatedItems: updated}, nil
}

// planMoves looks every id up and computes its next status without writing.
// A repeated id is planned against the status its earlier occurrence produced.
func (uc *implUseCase) planMoves(ctx context.Context, input item.UpdateStatusInput) ([]plannedMove, error) {
	pending := make(map[int64]item.Status)
	moves := make([]plannedMove, 0, len(input.ItemIDs))

	for _, id := range input.ItemIDs {
		it, found, err := uc.repo.GetItem(ctx, id)
		if err != nil {
			uc.l.Errorf(ctx, "uc.UpdateStatus GetItem item=%d: %v", id, err)
			return nil, err
		}
		if !found {
			uc.l.Warnf(ctx, "uc.UpdateStatus: item %d not found, skipping", id)
			continue
		}

		if !item.Authorized(input.Action, input.ActingRole) {
			uc.l.Warnf(ctx, "uc.UpdateStatus: actor=%d role=%s may not %s item %d, aborting batch",
				input.ActingUserID, input.ActingRole, input.Action, id)
			return nil, &item.ForbiddenError{ItemID: it.ID, Title: it.Title}
		}

		current := it.Status
		if s, ok := pending[id]; ok {
			current = s
		}
		if !current.IsValid() {
			uc.l.Errorf(ctx, "uc.UpdateStatus: item %d has unknown status %q", id, current)
			return nil, fmt.Errorf("item %d: %w", id, item.ErrCorruptStatus)
		}

		next := item.Transition(current, input.Action)
		pending[id] = next
		moves = append(moves, plannedMove{item: it, previous: current, next: next})
	}
	return moves, nil
}

// recordAudit writes the audit entry. The status is already stored, so a sink
// failure is logged and not returned.
func (uc *implUseCase) recordAudit(ctx context.Context, batchID uuid.UUID, input item.UpdateStatusInput, mv plannedMove) {
	entry := item.AuditEntry{
		ID:             uuid.New(),
		BatchID:        batchID,
		ActorID:        input.ActingUserID,
		ActorRole:      input.ActingRole,
		ItemID:         mv.item.ID,
		Action:         input.Action,
		PreviousStatus: mv.previous,
		NewStatus:      mv.next,
		RecordedAt:     uc.now().UTC(),
	}
	if err := uc.audit.Record(ctx, entry); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateStatus audit item=%d: %v", mv.item.ID, err)
	}
}
