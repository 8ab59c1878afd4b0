package memory

import (
	"context"

	"trade-custody/internal/item"
)

// RecordAudit appends an entry to the in-memory audit trail.
func (r *implRepository) RecordAudit(ctx context.Context, entry item.AuditEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.audits = append(r.audits, entry)
	return nil
}

// ListAudits returns the entries for itemID, oldest first.
func (r *implRepository) ListAudits(ctx context.Context, itemID int64) ([]item.AuditEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []item.AuditEntry
	for _, e := range r.audits {
		if e.ItemID == itemID {
			out = append(out, e)
		}
	}
	return out, nil
}
