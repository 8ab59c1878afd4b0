package postgre

import (
	"context"

	"trade-custody/internal/item"
	repo "trade-custody/internal/item/repository"
	"trade-custody/internal/model"
)

// RecordAudit inserts one audit row.
func (r *implRepository) RecordAudit(ctx context.Context, e item.AuditEntry) error {
	const query = `
		INSERT INTO item_status_audits
		  (id, batch_id, actor_id, actor_role, item_id, action, previous_status, new_status, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.BatchID, e.ActorID, string(e.ActorRole), e.ItemID,
		string(e.Action), string(e.PreviousStatus), string(e.NewStatus), e.RecordedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RecordAudit"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// listAuditsQuery orders by insertion sequence within one timestamp, so the
// entries of a batch that repeats an id keep their order.
const listAuditsQuery = `
	SELECT id, batch_id, actor_id, actor_role, item_id, action, previous_status, new_status, recorded_at
	FROM item_status_audits WHERE item_id = $1 ORDER BY recorded_at, seq`

// ListAudits returns the audit trail of one item, oldest first.
func (r *implRepository) ListAudits(ctx context.Context, itemID int64) ([]item.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, listAuditsQuery, itemID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAudits"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []item.AuditEntry
	for rows.Next() {
		var e item.AuditEntry
		var role, action, prevStatus, newStatus string
		if err := rows.Scan(&e.ID, &e.BatchID, &e.ActorID, &role, &e.ItemID, &action, &prevStatus, &newStatus, &e.RecordedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListAudits"), err)
			return nil, repo.ErrFailedToList
		}
		e.ActorRole = model.Role(role)
		e.Action = item.Action(action)
		e.PreviousStatus = item.Status(prevStatus)
		e.NewStatus = item.Status(newStatus)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return entries, nil
}
