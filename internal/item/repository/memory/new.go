package memory

import (
	"sync"

	"trade-custody/internal/item"
	"trade-custody/internal/item/repository"
	"trade-custody/pkg/log"
)

type implRepository struct {
	mu     sync.RWMutex
	items  map[int64]item.Item
	audits []item.AuditEntry
	l      log.Logger
}

// New creates an in-memory Repository. Conflicting writes are serialised by a mutex.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		items: make(map[int64]item.Item),
		l:     l,
	}
}
