package goal

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type StubGoalRepo struct {
	nextId int
	data   map[int]Goal
}

func NewStubGoalRepo() *StubGoalRepo {
	return &StubGoalRepo{data: map[int]Goal{}}
}

func (s *StubGoalRepo) Store(ctx context.Context, userId int, goal Goal) (int, error) {
	s.nextId++
	goal.ID = s.nextId
	goal.CreatedAt = time.Now()
	s.data[goal.ID] = goal
	return goal.ID, nil
}

func (s *StubGoalRepo) Get(ctx context.Context, userId int, id int) (Goal, error) {
	goal, ok := s.data[id]
	if !ok {
		return Goal{}, ErrGoalNotFound
	}
	return goal, nil
}

func (s *StubGoalRepo) GetAll(ctx context.Context, userId int) ([]Goal, error) {
	goals := make([]Goal, 0, len(s.data))
	for _, goal := range s.data {
		goals = append(goals, goal)
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].ID < goals[j].ID })
	return goals, nil
}

func (s *StubGoalRepo) Update(ctx context.Context, userId int, goal Goal) (bool, error) {
	stored, ok := s.data[goal.ID]
	if !ok {
		return false, nil
	}
	stored.Name = goal.Name
	stored.TargetAmount = goal.TargetAmount
	stored.Deadline = goal.Deadline
	s.data[goal.ID] = stored
	return true, nil
}

func (s *StubGoalRepo) AddContribution(ctx context.Context, userId int, id int, amount decimal.Decimal) (Goal, error) {
	stored, ok := s.data[id]
	if !ok {
		return Goal{}, ErrGoalNotFound
	}
	stored.SavedAmount = stored.SavedAmount.Add(amount)
	s.data[id] = stored
	return stored, nil
}

func (s *StubGoalRepo) Delete(ctx context.Context, userId int, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubGoalRepo) Cleanup() {
	s.data = map[int]Goal{}
}
