package commands_test

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify double for ports.Repository.
// Update loads the entity configured for "Update" and applies mutate to it.
type MockRepository[T ports.Entity] struct{ mock.Mock }

func (m *MockRepository[T]) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

// Create replays the store's allocation through the "NextID" and "Add" expectations.
func (m *MockRepository[T]) Create(ctx context.Context, build func(id kernel.ID) (T, error)) (T, error) {
	var zero T
	args := m.MethodCalled("NextID", ctx)
	if err := args.Error(1); err != nil {
		return zero, err
	}
	entity, err := build(args.Get(0).(kernel.ID))
	if err != nil {
		return zero, err
	}
	if err := m.MethodCalled("Add", ctx, entity).Error(0); err != nil {
		return zero, err
	}
	return entity, nil
}

func (m *MockRepository[T]) Add(ctx context.Context, entity T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[T]) Get(ctx context.Context, id kernel.ID) (T, error) {
	args := m.Called(ctx, id)
	entity, _ := args.Get(0).(T)
	return entity, args.Error(1)
}

func (m *MockRepository[T]) Update(ctx context.Context, id kernel.ID, mutate func(T) error) (T, error) {
	args := m.Called(ctx, id)
	var zero T
	if err := args.Error(1); err != nil {
		return zero, err
	}
	entity, _ := args.Get(0).(T)
	if err := mutate(entity); err != nil {
		return zero, err
	}
	return entity, nil
}

func (m *MockRepository[T]) Delete(ctx context.Context, id kernel.ID) (T, error) {
	args := m.Called(ctx, id)
	entity, _ := args.Get(0).(T)
	return entity, args.Error(1)
}

func (m *MockRepository[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	entities, _ := args.Get(0).([]T)
	return entities, args.Error(1)
}

func (m *MockRepository[T]) Stats(ctx context.Context) (ports.StoreStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.StoreStats), args.Error(1)
}
