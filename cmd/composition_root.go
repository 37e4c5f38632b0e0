package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	httpapi "supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/region/memregion"
	"supplychain/internal/adapters/out/region/pgregion"
	"supplychain/internal/adapters/out/region/sqliteregion"
	"supplychain/internal/adapters/out/stable"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/model/user"
	"supplychain/internal/core/ports"
	"supplychain/internal/jobs"
	"supplychain/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// CompositionRoot owns the process-wide objects: one region provider, the entity
// stores opened over it once, the clock, the logger and the metrics registry.
type CompositionRoot struct {
	cfg      Config
	provider ports.RegionProvider
	repos    *stable.Repositories
	clock    kernel.Clock
	logger   *slog.Logger
	metrics  *metrics.Metrics
	registry *prometheus.Registry
}

func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	provider, err := OpenProvider(cfg)
	if err != nil {
		return nil, err
	}

	repos, err := stable.Open(ctx, provider)
	if err != nil {
		provider.Close()
		return nil, fmt.Errorf("open stores: %w", err)
	}

	registry := prometheus.NewRegistry()
	m := metrics.New()
	if err := m.Register(registry); err != nil {
		provider.Close()
		return nil, err
	}
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &CompositionRoot{
		cfg:      cfg,
		provider: provider,
		repos:    repos,
		clock:    kernel.SystemClock{},
		logger:   logger,
		metrics:  m,
		registry: registry,
	}, nil
}

// OpenProvider opens the region provider selected by STORAGE_DRIVER.
func OpenProvider(cfg Config) (ports.RegionProvider, error) {
	switch cfg.StorageDriver {
	case DriverMemory:
		return memregion.New(), nil
	case DriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		return sqliteregion.Open(cfg.SQLitePath)
	case DriverPostgres:
		return pgregion.Open(cfg.PostgresDSN())
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func (c *CompositionRoot) Close() error {
	return c.provider.Close()
}

func (c *CompositionRoot) Repositories() *stable.Repositories {
	return c.repos
}

func (c *CompositionRoot) CreateHTTPHandlers() httpapi.Handlers {
	r := c.repos
	return httpapi.Handlers{
		AddProduct:    commands.NewAddProductCommandHandler(r.Products),
		UpdateProduct: commands.NewUpdateProductCommandHandler(r.Products),
		DeleteProduct: commands.NewDeleteCommandHandler[*product.Product](r.Products),
		GetProduct:    queries.NewGetQueryHandler[*product.Product](r.Products),
		ListProducts:  queries.NewListQueryHandler[*product.Product](r.Products),

		AddOrder:    commands.NewAddOrderCommandHandler(r.Orders, c.clock),
		UpdateOrder: commands.NewUpdateOrderCommandHandler(r.Orders),
		DeleteOrder: commands.NewDeleteCommandHandler[*order.Order](r.Orders),
		GetOrder:    queries.NewGetQueryHandler[*order.Order](r.Orders),
		ListOrders:  queries.NewListQueryHandler[*order.Order](r.Orders),

		AddShipment:               commands.NewAddShipmentCommandHandler(r.Shipments, c.clock),
		UpdateShipment:            commands.NewUpdateShipmentCommandHandler(r.Shipments, c.clock),
		UpdateShipmentStatus:      commands.NewUpdateShipmentStatusCommandHandler(r.Shipments, c.clock),
		DeleteShipment:            commands.NewDeleteCommandHandler[*shipment.Shipment](r.Shipments),
		GetShipment:               queries.NewGetQueryHandler[*shipment.Shipment](r.Shipments),
		ListShipments:             queries.NewListQueryHandler[*shipment.Shipment](r.Shipments),
		GetShipmentStatus:         queries.NewGetShipmentStatusQueryHandler(r.Shipments),
		GetShipmentLocationProofs: queries.NewGetShipmentLocationProofsQueryHandler(r.Shipments),

		AddUser:    commands.NewAddUserCommandHandler(r.Users),
		UpdateUser: commands.NewUpdateUserCommandHandler(r.Users),
		DeleteUser: commands.NewDeleteCommandHandler[*user.User](r.Users),
		GetUser:    queries.NewGetQueryHandler[*user.User](r.Users),
		ListUsers:  queries.NewListQueryHandler[*user.User](r.Users),
	}
}

func (c *CompositionRoot) CreateInspectStoresQueryHandler() queries.InspectStoresQueryHandler {
	return queries.NewInspectStoresQueryHandler(c.repos)
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	server := httpapi.NewServer(c.CreateHTTPHandlers(), c.logger)
	return httpapi.NewRouter(ctx, server, httpapi.RouterConfig{
		Logger:   c.logger,
		Metrics:  c.metrics,
		Gatherer: c.registry,
	})
}

// CreateJobManager registers the store audit unless AUDIT_SCHEDULE is empty.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	jm := jobs.NewJobManager(c.logger)
	if c.cfg.AuditSchedule != "" {
		jm.Add("store audit job", jobs.NewStoreAuditJob(
			c.CreateInspectStoresQueryHandler(), c.metrics, c.cfg.AuditSchedule, c.logger))
	}
	return jm
}
