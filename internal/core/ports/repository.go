package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/model/supplier"
	"supplychain/internal/core/domain/model/user"
)

// Entity is satisfied by every aggregate the store can hold.
type Entity interface {
	ID() kernel.ID
}

// Repository is the persistence contract of one entity type.
// Each entity type has its own id sequence and record space; operations on one
// repository are applied one at a time in call order.
type Repository[T Entity] interface {
	// NextID allocates an identifier. It never returns the same value twice, even if
	// the caller never stores a record under it.
	NextID(ctx context.Context) (kernel.ID, error)

	// Create calls build with the id NextID would return and stores the result.
	// If build fails or the record would not fit, nothing is stored and no id is spent.
	//
	// Example:
	//   p, err := repo.Create(ctx, func(id kernel.ID) (*product.Product, error) {
	//       return product.NewProduct(id, "Widget", "", 9.99, 10)
	//   })
	Create(ctx context.Context, build func(id kernel.ID) (T, error)) (T, error)

	// Add stores entity under entity.ID(), overwriting any record already there.
	Add(ctx context.Context, entity T) error

	// Get returns the record stored under id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (T, error)

	// Update loads the record under id, applies mutate and stores the result.
	// Concurrent calls for one repository never interleave. If mutate fails nothing is stored.
	//
	// Example:
	//   updated, err := repo.Update(ctx, id, func(s *shipment.Shipment) error {
	//       return s.UpdateStatus(shipment.Shipped, proof, clock.Now())
	//   })
	Update(ctx context.Context, id kernel.ID, mutate func(T) error) (T, error)

	// Delete removes the record under id and returns it, or errs.ObjectNotFoundError.
	// The id is never reissued.
	Delete(ctx context.Context, id kernel.ID) (T, error)

	// List returns all live records in ascending id order.
	List(ctx context.Context) ([]T, error)

	// Stats reports allocation and occupancy, including ids whose stored bytes cannot be decoded.
	Stats(ctx context.Context) (StoreStats, error)
}

// StoreStats describes one entity store.
type StoreStats struct {
	Entity  string
	NextID  kernel.ID
	Records int
	Corrupt []kernel.ID
}

type ProductRepository = Repository[*product.Product]

type SupplierRepository = Repository[*supplier.Supplier]

type OrderRepository = Repository[*order.Order]

type ShipmentRepository = Repository[*shipment.Shipment]

type UserRepository = Repository[*user.User]
