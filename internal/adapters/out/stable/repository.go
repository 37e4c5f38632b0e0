package stable

import (
	"context"
	"errors"
	"sync"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// Repository is the store of one entity type: its Counter and RecordMap behind one lock.
type Repository[T ports.Entity] struct {
	entity  string
	counter *Counter
	records *RecordMap[T]

	mu sync.Mutex
}

// NewRepository binds an entity store to its two regions.
func NewRepository[T ports.Entity](entity string, counter, records ports.Region, codec Codec[T]) *Repository[T] {
	return &Repository[T]{
		entity:  entity,
		counter: NewCounter(counter),
		records: NewRecordMap(entity, records, codec),
	}
}

func (r *Repository[T]) NextID(ctx context.Context) (kernel.ID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counter.Next(ctx)
}

func (r *Repository[T]) Add(ctx context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records.Insert(ctx, entity.ID(), entity)
}

// Create stores the entity build returns for the id Next would issue. The id is
// allocated only after the entity is built and known to fit a slot, so a rejected
// entity leaves the sequence where it was.
func (r *Repository[T]) Create(ctx context.Context, build func(id kernel.ID) (T, error)) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	next, err := r.counter.Peek(ctx)
	if err != nil {
		return zero, err
	}
	entity, err := build(next)
	if err != nil {
		return zero, err
	}
	if err := r.records.Fits(next, entity); err != nil {
		return zero, err
	}

	id, err := r.counter.Next(ctx)
	if err != nil {
		return zero, err
	}
	if err := r.records.Insert(ctx, id, entity); err != nil {
		return zero, err
	}
	return entity, nil
}

func (r *Repository[T]) Get(ctx context.Context, id kernel.ID) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(ctx, id)
}

func (r *Repository[T]) Update(ctx context.Context, id kernel.ID, mutate func(T) error) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity, err := r.get(ctx, id)
	if err != nil {
		return entity, err
	}
	if err := mutate(entity); err != nil {
		var zero T
		return zero, err
	}
	if err := r.records.Insert(ctx, id, entity); err != nil {
		var zero T
		return zero, err
	}
	return entity, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id kernel.ID) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity, ok, err := r.records.Remove(ctx, id)
	if err != nil {
		return entity, err
	}
	if !ok {
		return entity, errs.NewObjectNotFoundError(r.entity, id.Uint64())
	}
	return entity, nil
}

// List stops at the first corrupted record and returns its error.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		out      []T
		rangeErr error
	)
	err := r.records.Range(ctx, func(_ kernel.ID, entity T, err error) bool {
		if err != nil {
			rangeErr = err
			return false
		}
		out = append(out, entity)
		return true
	})
	if err := errors.Join(err, rangeErr); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats counts live records and collects the ids of corrupted ones instead of failing on them.
func (r *Repository[T]) Stats(ctx context.Context) (ports.StoreStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := r.counter.Peek(ctx)
	if err != nil {
		return ports.StoreStats{}, err
	}

	stats := ports.StoreStats{Entity: r.entity, NextID: next}
	err = r.records.Range(ctx, func(id kernel.ID, _ T, err error) bool {
		if errors.Is(err, errs.ErrRecordIsCorrupted) {
			stats.Corrupt = append(stats.Corrupt, id)
			return true
		}
		stats.Records++
		return true
	})
	if err != nil {
		return ports.StoreStats{}, err
	}
	return stats, nil
}

func (r *Repository[T]) get(ctx context.Context, id kernel.ID) (T, error) {
	entity, ok, err := r.records.Get(ctx, id)
	if err != nil {
		return entity, err
	}
	if !ok {
		return entity, errs.NewObjectNotFoundError(r.entity, id.Uint64())
	}
	return entity, nil
}
