package stable

import (
	"context"
	"fmt"

	"supplychain/internal/adapters/out/stable/records"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/model/supplier"
	"supplychain/internal/core/domain/model/user"
	"supplychain/internal/core/ports"
)

// Entities lists every stored entity type in the order stores are reported.
var Entities = []string{
	product.EntityName,
	supplier.EntityName,
	order.EntityName,
	shipment.EntityName,
	user.EntityName,
}

func CounterTag(entity string) string {
	return entity + "/counter"
}

func RecordsTag(entity string) string {
	return entity + "/records"
}

var (
	_ ports.ProductRepository  = (*Repository[*product.Product])(nil)
	_ ports.SupplierRepository = (*Repository[*supplier.Supplier])(nil)
	_ ports.OrderRepository    = (*Repository[*order.Order])(nil)
	_ ports.ShipmentRepository = (*Repository[*shipment.Shipment])(nil)
	_ ports.UserRepository     = (*Repository[*user.User])(nil)
)

// Repositories holds the store of every entity type. It is built once by Open.
type Repositories struct {
	Products  *Repository[*product.Product]
	Suppliers *Repository[*supplier.Supplier]
	Orders    *Repository[*order.Order]
	Shipments *Repository[*shipment.Shipment]
	Users     *Repository[*user.User]
}

// Open binds the counter and records regions of every entity type.
// Opening the same provider again yields stores over the same data.
func Open(ctx context.Context, provider ports.RegionProvider) (*Repositories, error) {
	var (
		repos Repositories
		err   error
	)

	if repos.Products, err = open[*product.Product](ctx, provider, product.EntityName, records.ProductCodec{}); err != nil {
		return nil, err
	}
	if repos.Suppliers, err = open[*supplier.Supplier](ctx, provider, supplier.EntityName, records.SupplierCodec{}); err != nil {
		return nil, err
	}
	if repos.Orders, err = open[*order.Order](ctx, provider, order.EntityName, records.OrderCodec{}); err != nil {
		return nil, err
	}
	if repos.Shipments, err = open[*shipment.Shipment](ctx, provider, shipment.EntityName, records.ShipmentCodec{}); err != nil {
		return nil, err
	}
	if repos.Users, err = open[*user.User](ctx, provider, user.EntityName, records.UserCodec{}); err != nil {
		return nil, err
	}

	return &repos, nil
}

// Stats reports every store in Entities order.
func (r *Repositories) Stats(ctx context.Context) ([]ports.StoreStats, error) {
	collectors := []func(context.Context) (ports.StoreStats, error){
		r.Products.Stats,
		r.Suppliers.Stats,
		r.Orders.Stats,
		r.Shipments.Stats,
		r.Users.Stats,
	}

	out := make([]ports.StoreStats, 0, len(collectors))
	for _, collect := range collectors {
		stats, err := collect(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, stats)
	}
	return out, nil
}

func open[T ports.Entity](
	ctx context.Context,
	provider ports.RegionProvider,
	entity string,
	codec Codec[T],
) (*Repository[T], error) {
	counter, err := provider.Region(ctx, CounterTag(entity))
	if err != nil {
		return nil, fmt.Errorf("open %s counter: %w", entity, err)
	}
	recs, err := provider.Region(ctx, RecordsTag(entity))
	if err != nil {
		return nil, fmt.Errorf("open %s records: %w", entity, err)
	}
	return NewRepository(entity, counter, recs, codec), nil
}
