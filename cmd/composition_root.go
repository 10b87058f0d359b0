package cmd

import (
	"fmt"
	"log/slog"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpadapter "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/crypto"
	memoryorderrepo "shop/internal/adapters/out/memory/orderrepo"
	memoryuserrepo "shop/internal/adapters/out/memory/userrepo"
	pgorderrepo "shop/internal/adapters/out/postgres/orderrepo"
	pguserrepo "shop/internal/adapters/out/postgres/userrepo"
	"shop/internal/core/application/services"
	"shop/internal/core/ports"
	"shop/internal/jobs"
)

// CompositionRoot wires repositories, services and adapters together.
// It is the only place that knows which concrete adapters back the ports.
type CompositionRoot struct {
	config       Config
	clock        services.Clock
	userService  *services.UserService
	orderService *services.OrderService
}

// NewCompositionRoot builds the object graph for the given configuration.
// With a configured database host it connects to PostgreSQL and runs the
// schema migrations; otherwise it falls back to the in-memory repositories.
func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	var (
		userRepo  ports.UserRepository
		orderRepo ports.OrderRepository
	)

	if config.UsesPostgres() {
		db, err := gorm.Open(gorm_postgres.Open(config.PostgresDSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err = db.AutoMigrate(&pguserrepo.UserDTO{}, &pgorderrepo.OrderDTO{}); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		userRepo = pguserrepo.NewGormUserRepository(db)
		orderRepo = pgorderrepo.NewGormOrderRepository(db)
	} else {
		userRepo = memoryuserrepo.NewRepository()
		orderRepo = memoryorderrepo.NewRepository()
	}

	clock := services.SystemClock()
	ids := services.RandomIDs()
	hasher := crypto.BcryptHasher{}

	return &CompositionRoot{
		config:       config,
		clock:        clock,
		userService:  services.NewUserService(userRepo, hasher, clock, ids),
		orderService: services.NewOrderService(orderRepo, userRepo, clock, ids),
	}, nil
}

// HTTPServer creates the HTTP adapter over the application services.
func (c *CompositionRoot) HTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(c.userService, c.orderService)
}

// JobManager creates the background job manager.
func (c *CompositionRoot) JobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.orderService, c.clock, c.config.StaleOrderTTL, logger)
}
