package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"trade-custody/internal/item"
	repo "trade-custody/internal/item/repository"
)

// GetItem retrieves a single Item by id.
// Returns found == false, with no error, when the row does not exist.
func (r *implRepository) GetItem(ctx context.Context, id int64) (item.Item, bool, error) {
	const query = `SELECT id, title, status, updated_at FROM items WHERE id = ?`

	var (
		it        item.Item
		status    string
		updatedAt int64
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&it.ID, &it.Title, &status, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return item.Item{}, false, repo.ErrFailedToGet
	}
	it.Status = item.Status(status)
	it.UpdatedAt = fromMillis(updatedAt)
	return it, true, nil
}

// SetItemStatus moves an existing Item to opt.Status.
func (r *implRepository) SetItemStatus(ctx context.Context, opt repo.SetItemStatusOptions) error {
	if !opt.Status.IsValid() {
		return repo.ErrInvalidStatus
	}
	return r.updateStatus(ctx, r.db, "SetItemStatus", opt)
}

// SetItemStatuses applies every change inside one transaction. Any failure,
// including an unknown id, rolls the whole batch back.
func (r *implRepository) SetItemStatuses(ctx context.Context, opts []repo.SetItemStatusOptions) error {
	for _, opt := range opts {
		if !opt.Status.IsValid() {
			return repo.ErrInvalidStatus
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("SetItemStatuses"), err)
		return repo.ErrFailedToUpdate
	}
	defer func() { _ = tx.Rollback() }()

	for _, opt := range opts {
		if err := r.updateStatus(ctx, tx, "SetItemStatuses", opt); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("SetItemStatuses"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *implRepository) updateStatus(ctx context.Context, db execer, method string, opt repo.SetItemStatusOptions) error {
	const query = `UPDATE items SET status = ?, updated_at = ? WHERE id = ?`

	res, err := db.ExecContext(ctx, query, string(opt.Status), toMillis(time.Now()), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn(method), err)
		return repo.ErrFailedToUpdate
	}
	if n == 0 {
		r.l.Warnf(ctx, "%s: item %d not found", r.dsn(method), opt.ID)
		return repo.ErrNotFound
	}
	return nil
}

// ListItems returns a page of Items ordered by id and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int, error) {
	where, args := buildWhere(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM items %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT id, title, status, updated_at FROM items %s ORDER BY id", where)
	if opt.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opt.Limit)
		if opt.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opt.Offset)
		}
	} else if opt.Offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		var (
			it        item.Item
			status    string
			updatedAt int64
		)
		if err := rows.Scan(&it.ID, &it.Title, &status, &updatedAt); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		it.Status = item.Status(status)
		it.UpdatedAt = fromMillis(updatedAt)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// UpsertItem inserts an Item or replaces its title and status.
func (r *implRepository) UpsertItem(ctx context.Context, opt repo.UpsertItemOptions) error {
	if !opt.Status.IsValid() {
		return repo.ErrInvalidStatus
	}
	const query = `
		INSERT INTO items (id, title, status, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET title = excluded.title, status = excluded.status, updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.Title, string(opt.Status), toMillis(time.Now())); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertItem"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func buildWhere(opt repo.ListItemsOptions) (string, []any) {
	var conditions []string
	var args []any
	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
