package usecase

import (
	"context"
	"time"

	"muhurat-planner/internal/planner/repository"
	"muhurat-planner/pkg/advisory"
	"muhurat-planner/pkg/log"
)

// Default knobs for range computation and ranking.
const (
	DefaultBudget      = 5 * time.Second
	DefaultResultLimit = 3
)

// Advisor is the optional "why this slot" text provider. Best-effort only:
// every failure is swallowed and replaced with the static rationale.
type Advisor interface {
	Explain(ctx context.Context, req advisory.Request) (advisory.Response, error)
}

// implUseCase is the private implementation of planner.UseCase.
type implUseCase struct {
	repo    repository.Repository
	advisor Advisor // may be nil
	l       log.Logger
	budget  time.Duration
	now     func() time.Time
}

// New creates the planner UseCase implementation. budget <= 0 falls back to
// the 5 second default. advisor may be nil when the provider is not
// configured.
func New(l log.Logger, repo repository.Repository, advisor Advisor, budget time.Duration) *implUseCase {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &implUseCase{
		repo:    repo,
		advisor: advisor,
		l:       l,
		budget:  budget,
		now:     time.Now,
	}
}
