package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"example.com/gamification/internal/planner"
)

// PlanStore is an in-memory planner.PlanStore.
type PlanStore struct {
	mu    sync.Mutex
	plans map[string][]planner.GeneratedPlan

	SaveErr error
}

var _ planner.PlanStore = (*PlanStore)(nil)

// NewPlanStore constructs an empty PlanStore.
func NewPlanStore() *PlanStore {
	return &PlanStore{plans: make(map[string][]planner.GeneratedPlan)}
}

// SavePlan implements planner.PlanStore.
func (s *PlanStore) SavePlan(ctx context.Context, userID string, plan planner.GeneratedPlan) ([]string, error) {
	if s.SaveErr != nil {
		return nil, s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plans[userID] = append(s.plans[userID], plan)
	ids := make([]string, len(plan.Days))
	for i := range plan.Days {
		ids[i] = uuid.NewString()
	}
	return ids, nil
}

// Plans returns the stored plans for a user.
func (s *PlanStore) Plans(userID string) []planner.GeneratedPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]planner.GeneratedPlan(nil), s.plans[userID]...)
}
