package provider

import (
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/authz"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/cache"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/config"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/logger"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/queue"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/service"
)

// Container holds the shared dependencies of the API and the worker.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo    repository.UserRepository
	TokenRepo   repository.TokenRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	SalesRepo   repository.SalesRepository

	// Services
	AuthzService   *authz.Service
	AuthService    *service.AuthService
	CaptchaService *service.CaptchaService
	ProductService *service.ProductService
	CartService    *service.CartService
	OrderService   *service.OrderService
	SalesService   *service.SalesService
}

// NewContainer wires repositories and services on top of the open
// database connection.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.TokenRepo = repository.NewTokenRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.SalesRepo = repository.NewSalesRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.UserRepo, c.TokenRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(models.DB, c.OrderRepo, c.CartRepo, c.ProductRepo, c.SalesRepo)
	c.SalesService = service.NewSalesService(c.SalesRepo)
}
