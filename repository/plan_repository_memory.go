package repository

import (
	"context"
	"sort"
	"sync"

	"debt-planner/domain"
)

// PlanRepositoryMemory is an in-memory implementation of PlanRepository.
type PlanRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.PlanSnapshot
}

// NewPlanRepositoryMemory creates a new in-memory plan repository.
func NewPlanRepositoryMemory() *PlanRepositoryMemory {
	return &PlanRepositoryMemory{
		data: []domain.PlanSnapshot{},
	}
}

// Save stores the plan snapshot in memory.
func (r *PlanRepositoryMemory) Save(_ context.Context, plan domain.PlanSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, plan)
	return nil
}

func (r *PlanRepositoryMemory) List(_ context.Context, limit int) ([]domain.PlanSnapshot, error) {
	r.mu.RLock()
	out := make([]domain.PlanSnapshot, len(r.data))
	copy(out, r.data)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *PlanRepositoryMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

// Ping always succeeds.
func (r *PlanRepositoryMemory) Ping(context.Context) error {
	return nil
}
