package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"trade-custody/internal/item"
	"trade-custody/internal/item/repository"
	"trade-custody/internal/item/repository/memory"
	"trade-custody/pkg/log"
)

// mockLogger keeps warnings so tests can assert on skipped items.
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, fmt.Sprint(arg...))
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// spyRepo wraps the memory store and counts writes.
// A batch holding setFailOn is rejected whole, as a rolled back transaction would be.
type spyRepo struct {
	repository.Repository
	sets      int
	batches   int
	getErr    error
	setErr    error
	setFailOn int64
	stored    map[int64]item.Status
}

func (s *spyRepo) GetItem(ctx context.Context, id int64) (item.Item, bool, error) {
	if s.getErr != nil {
		return item.Item{}, false, s.getErr
	}
	it, found, err := s.Repository.GetItem(ctx, id)
	if status, ok := s.stored[id]; ok && found {
		it.Status = status
	}
	return it, found, err
}

func (s *spyRepo) SetItemStatuses(ctx context.Context, opts []repository.SetItemStatusOptions) error {
	s.batches++
	for _, opt := range opts {
		if s.setErr != nil && opt.ID == s.setFailOn {
			return s.setErr
		}
	}
	s.sets += len(opts)
	return s.Repository.SetItemStatuses(ctx, opts)
}

// recordingSink collects audit entries.
type recordingSink struct {
	entries []item.AuditEntry
	err     error
}

func (r *recordingSink) Record(ctx context.Context, e item.AuditEntry) error {
	r.entries = append(r.entries, e)
	return r.err
}

var errStoreDown = errors.New("store down")

// newSeededRepo returns a store holding the event's sample games.
func newSeededRepo(t *testing.T) *spyRepo {
	t.Helper()
	r := memory.New(log.NewNop())
	for _, opt := range []repository.UpsertItemOptions{
		{ID: 21, Title: "Twilight Imperium", Status: item.StatusPending},
		{ID: 42, Title: "Gloomhaven", Status: item.StatusAtOrg},
		{ID: 1144, Title: "Brass: Birmingham", Status: item.StatusDelivered},
	} {
		if err := r.UpsertItem(context.Background(), opt); err != nil {
			t.Fatalf("seed %d: %v", opt.ID, err)
		}
	}
	return &spyRepo{Repository: r}
}

func statusOf(t *testing.T, r repository.Repository, id int64) item.Status {
	t.Helper()
	it, found, err := r.GetItem(context.Background(), id)
	if err != nil || !found {
		t.Fatalf("get %d: found=%v err=%v", id, found, err)
	}
	return it.Status
}
