package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-custody/internal/item"
	"trade-custody/internal/item/audit"
	"trade-custody/internal/item/repository/memory"
	"trade-custody/pkg/log"
)

type failingSink struct{ calls int }

func (f *failingSink) Record(ctx context.Context, e item.AuditEntry) error {
	f.calls++
	return errors.New("sink down")
}

func TestStoreSinkPersists(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(log.NewNop())
	sink := audit.NewStoreSink(repo)

	entry := item.AuditEntry{ID: uuid.New(), ItemID: 21, NewStatus: item.StatusAtOrg}
	require.NoError(t, sink.Record(ctx, entry))

	got, err := repo.ListAudits(ctx, 21)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entry.ID, got[0].ID)
}

func TestMultiCallsEverySink(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(log.NewNop())
	failing := &failingSink{}

	sink := audit.Multi(failing, audit.NewLogSink(log.NewNop()), audit.NewStoreSink(repo))
	err := sink.Record(ctx, item.AuditEntry{ID: uuid.New(), ItemID: 5})

	assert.Error(t, err)
	assert.Equal(t, 1, failing.calls)
	got, _ := repo.ListAudits(ctx, 5)
	assert.Len(t, got, 1, "later sinks still run after a failure")
}

func TestMultiEmpty(t *testing.T) {
	assert.NoError(t, audit.Multi().Record(context.Background(), item.AuditEntry{}))
}
