package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	orderhttp "foodorders/internal/adapters/in/http"
	"foodorders/internal/adapters/out/eventlog"
	"foodorders/internal/adapters/out/kafka"
	"foodorders/internal/adapters/out/memory"
	"foodorders/internal/adapters/out/postgres"
	"foodorders/internal/adapters/out/postgres/outboxrepo"
	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/core/application/usecases/validation"
	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/ports"
	"foodorders/internal/jobs"
	"foodorders/internal/telemetry"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config  Config
	logger  *slog.Logger
	metrics *telemetry.Metrics

	uowFactory ports.UnitOfWorkFactory
	outbox     ports.OutboxRepository
	publisher  ports.EventPublisher
	validator  *validation.Validator

	closers []func() error
}

// NewCompositionRoot wires the application over postgres when gormDB is set and over
// a seeded in-memory store otherwise.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:  config,
		logger:  logger,
		metrics: telemetry.NewMetrics(),
	}

	if gormDB != nil {
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		c.outbox = outboxrepo.NewGormOutboxRepository(gormDB)
	} else {
		store := memory.NewStore()
		if err := SeedCatalog(store); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		c.uowFactory = memory.NewUnitOfWorkFactory(store)
		c.outbox = memory.NewOutboxRepository(store)
	}

	if brokers := config.Brokers(); len(brokers) > 0 {
		publisher := kafka.NewPublisher(brokers, config.KafkaOrderEventsTopic)
		c.publisher = publisher
		c.closers = append(c.closers, publisher.Close)
	} else {
		c.publisher = eventlog.NewPublisher(logger)
	}

	c.validator = validation.NewValidator(c.uowFactory, c.metrics)
	return c, nil
}

func (c *CompositionRoot) commandFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) readFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.commandFactory(), c.validator)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.commandFactory(), c.validator)
}

func (c *CompositionRoot) CreateDestroyOrderCommandHandler() commands.DestroyOrderCommandHandler {
	return commands.NewDestroyOrderCommandHandler(c.commandFactory(), c.validator)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.commandFactory(), c.validator)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(c.outbox, c.publisher, c.metrics)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readFactory())
}

func (c *CompositionRoot) CreateValidateOrderQueryHandler() queries.ValidateOrderQueryHandler {
	return queries.NewValidateOrderQueryHandler(c.validator)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := orderhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDestroyOrderCommandHandler(),
		c.CreateTransitionOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateValidateOrderQueryHandler(),
		c.logger,
	)
	return orderhttp.NewRouter(server, c.logger, c.metrics, c.MetricsHandler())
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	relayCmd, err := commands.NewRelayOutboxCommand(c.config.OutboxBatchSize)
	if err != nil {
		return nil, err
	}
	relayHandler := c.CreateRelayOutboxCommandHandler()
	return jobs.NewJobManager(&relayHandler, relayCmd, c.logger), nil
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return c.metrics.Handler()
}

// Close releases the outbound connections.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// SeedCatalog fills the in-memory store with the same catalog the seed migration
// inserts into postgres.
func SeedCatalog(store *memory.Store) error {
	restaurants := []struct {
		id   int64
		name string
	}{
		{1, "Pizzeria Napoli"},
		{2, "Sushi Bar"},
	}
	for _, r := range restaurants {
		restaurant, err := catalog.NewRestaurant(kernel.MustID(r.id), r.name)
		if err != nil {
			return err
		}
		if err := store.AddRestaurant(restaurant); err != nil {
			return err
		}
	}

	products := []struct {
		id, restaurantID int64
		name             string
		available        bool
	}{
		{1, 1, "Margherita", true},
		{2, 1, "Quattro Formaggi", true},
		{3, 1, "Calzone", false},
		{4, 2, "Salmon Nigiri", true},
		{5, 2, "Tuna Maki", true},
	}
	for _, p := range products {
		product, err := catalog.NewProduct(kernel.MustID(p.id), kernel.MustID(p.restaurantID), p.name, p.available)
		if err != nil {
			return err
		}
		if err := store.AddProduct(product); err != nil {
			return err
		}
	}
	return nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}
