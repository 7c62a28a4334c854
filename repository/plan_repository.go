package repository

import (
	"context"

	"debt-planner/domain"
)

type PlanRepository interface {
	Save(ctx context.Context, plan domain.PlanSnapshot) error
	// List returns the most recent snapshots first.
	List(ctx context.Context, limit int) ([]domain.PlanSnapshot, error)
}
