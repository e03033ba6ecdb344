package budget

import (
	"context"
	"sort"
	"sync"
)

type allocationKey struct {
	userId   int
	category string
	period   Period
}

// StubBudgetRepo mirrors the atomic upsert semantics of the real repo,
// including safety under concurrent calls.
type StubBudgetRepo struct {
	mu     sync.Mutex
	nextId int
	data   map[allocationKey]Allocation
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{data: map[allocationKey]Allocation{}}
}

func (s *StubBudgetRepo) Upsert(ctx context.Context, userId int, allocation Allocation) (Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := allocationKey{userId: userId, category: allocation.Category, period: allocation.Period}
	if existing, ok := s.data[key]; ok {
		allocation.ID = existing.ID
	} else {
		s.nextId++
		allocation.ID = s.nextId
	}
	s.data[key] = allocation
	return allocation, nil
}

func (s *StubBudgetRepo) GetAll(ctx context.Context, userId int) ([]Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var allocations []Allocation
	for key, a := range s.data {
		if key.userId == userId {
			allocations = append(allocations, a)
		}
	}
	sort.Slice(allocations, func(i, j int) bool {
		if allocations[i].Category == allocations[j].Category {
			return allocations[i].Period < allocations[j].Period
		}
		return allocations[i].Category < allocations[j].Category
	})
	return allocations, nil
}

func (s *StubBudgetRepo) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = map[allocationKey]Allocation{}
}
