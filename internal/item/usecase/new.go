package usecase

import (
	"time"

	"trade-custody/internal/item/audit"
	"trade-custody/internal/item/repository"
	"trade-custody/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo  repository.Repository
	audit audit.Sink
	l     log.Logger
	now   func() time.Time
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, sink audit.Sink, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		audit: sink,
		l:     l,
		now:   time.Now,
	}
}
