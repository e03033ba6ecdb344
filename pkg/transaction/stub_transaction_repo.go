package transaction

import (
	"context"
	"sort"
	"time"
)

type StubTransactionRepo struct {
	nextId int
	data   map[int]Transaction
}

func NewStubTransactionRepo() *StubTransactionRepo {
	return &StubTransactionRepo{nextId: 0, data: map[int]Transaction{}}
}

func (s *StubTransactionRepo) Store(ctx context.Context, userId int, tx Transaction) (Transaction, error) {
	s.nextId++
	tx.ID = s.nextId
	tx.CreatedAt = time.Now()
	tx.UpdatedAt = tx.CreatedAt
	s.data[tx.ID] = tx
	return tx, nil
}

func (s *StubTransactionRepo) GetAll(ctx context.Context, userId int, from, to time.Time) ([]Transaction, error) {
	var txs []Transaction
	for _, tx := range s.data {
		if !from.IsZero() && tx.Date.Before(from) {
			continue
		}
		if !to.IsZero() && tx.Date.After(to) {
			continue
		}
		txs = append(txs, tx)
	}
	sort.Slice(txs, func(i, j int) bool {
		if txs[i].Date.Equal(txs[j].Date) {
			return txs[i].ID < txs[j].ID
		}
		return txs[i].Date.Before(txs[j].Date)
	})
	return txs, nil
}

func (s *StubTransactionRepo) Update(ctx context.Context, userId int, tx Transaction) (bool, error) {
	stored, ok := s.data[tx.ID]
	if !ok {
		return false, nil
	}
	tx.Uid = stored.Uid
	tx.CreatedAt = stored.CreatedAt
	tx.UpdatedAt = time.Now()
	s.data[tx.ID] = tx
	return true, nil
}

func (s *StubTransactionRepo) Delete(ctx context.Context, userId int, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubTransactionRepo) Cleanup() {
	s.data = map[int]Transaction{}
}
