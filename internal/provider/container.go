package provider

import (
	"github.com/joymarket/joymarket/internal/authz"
	"github.com/joymarket/joymarket/internal/cache"
	"github.com/joymarket/joymarket/internal/config"
	"github.com/joymarket/joymarket/internal/logger"
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/queue"
	"github.com/joymarket/joymarket/internal/repository"
	"github.com/joymarket/joymarket/internal/service"
)

// Container wires repositories and services together
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo         repository.UserRepository
	CustomerRepo     repository.CustomerRepository
	CourierRepo      repository.CourierRepository
	ProductRepo      repository.ProductRepository
	CartRepo         repository.CartRepository
	OrderRepo        repository.OrderRepository
	PromoRepo        repository.PromoRepository
	DeliveryRepo     repository.DeliveryRepository
	UserLoginLogRepo repository.UserLoginLogRepository
	DashboardRepo    repository.DashboardRepository

	// Services
	AuthzService        *authz.Service
	UserAuthService     *service.UserAuthService
	UserLoginLogService *service.UserLoginLogService
	CaptchaService      *service.CaptchaService
	EmailService        *service.EmailService
	ProductService      *service.ProductService
	PromoService        *service.PromoService
	CartService         *service.CartService
	LedgerService       *service.LedgerService
	OrderService        *service.OrderService
	DeliveryService     *service.DeliveryService
	CourierService      *service.CourierService
	CustomerService     *service.CustomerService
	DashboardService    *service.DashboardService
}

// NewContainer builds the container
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
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.CourierRepo = repository.NewCourierRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PromoRepo = repository.NewPromoRepository(db)
	c.DeliveryRepo = repository.NewDeliveryRepository(db)
	c.UserLoginLogRepo = repository.NewUserLoginLogRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
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

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.CustomerRepo)
	c.UserLoginLogService = service.NewUserLoginLogService(c.UserLoginLogRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.PromoService = service.NewPromoService(c.PromoRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.Config.Site.Currency)
	c.LedgerService = service.NewLedgerService(c.CustomerRepo, c.Config.Ledger.TopUpMinimum)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.CartRepo, c.PromoRepo, c.PromoService, c.LedgerService, c.QueueClient, c.Config.Site.Currency)
	c.DeliveryService = service.NewDeliveryService(c.DeliveryRepo, c.OrderRepo, c.CourierRepo, c.CustomerRepo, c.QueueClient)
	c.CourierService = service.NewCourierService(c.CourierRepo, c.UserRepo, c.Config.Security.PasswordPolicy)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo, c.Config)
}
