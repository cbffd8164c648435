package repository

import (
	"context"
	"sync"

	"finance-calculator/domain"
)

// DefaultHistoryCapacity is used when a non-positive capacity is requested.
const DefaultHistoryCapacity = 1000

// CalculationRepositoryMemory keeps the most recent calculations in a fixed
// size ring. Older entries are overwritten once capacity is reached.
type CalculationRepositoryMemory struct {
	mu    sync.Mutex
	data  []domain.Calculation
	next  int
	count int
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory(capacity int) *CalculationRepositoryMemory {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &CalculationRepositoryMemory{
		data: make([]domain.Calculation, capacity),
	}
}

// Save stores the calculation in memory.
func (r *CalculationRepositoryMemory) Save(_ context.Context, calc domain.Calculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[r.next] = calc
	r.next = (r.next + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
	return nil
}

// Recent returns up to limit calculations, newest first. A non-positive
// limit returns everything held.
func (r *CalculationRepositoryMemory) Recent(_ context.Context, limit int) ([]domain.Calculation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > r.count {
		limit = r.count
	}
	out := make([]domain.Calculation, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (r.next - i + len(r.data)) % len(r.data)
		out = append(out, r.data[idx])
	}
	return out, nil
}
