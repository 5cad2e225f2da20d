package bootstrap

import (
	"context"
	"log"

	"catalog-be/internal/config"
	"catalog-be/internal/controller"
	"catalog-be/internal/mapper"
	"catalog-be/internal/metrics"
	"catalog-be/internal/pkg/logger"
	"catalog-be/internal/pkg/security"
	"catalog-be/internal/repository/contract"
	"catalog-be/internal/repository/memory"
	"catalog-be/internal/repository/redisstore"
	"catalog-be/internal/repository/unitofwork"
	"catalog-be/internal/service"
	"catalog-be/pkg/events"

	pktNats "catalog-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const channelTopic = "catalog.events"

type Container struct {
	// Controllers
	ProductController  controller.IProductController
	CategoryController controller.ICategoryController
	UserController     controller.IUserController
	AuthController     controller.IAuthController

	// Background Services (Exposed for main.go to run)
	AuditConsumer service.IAuditConsumerService

	Metrics *metrics.Metrics
	Logger  logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	auditLogger := logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)
	m := metrics.New(true)

	if cfg.Auth.JwtSecret == "" {
		log.Println("[WARN] JWT_SECRET is empty, tokens are signed with an empty key")
	}
	issuer := security.NewTokenIssuer(cfg.Auth.JwtSecret, cfg.Auth.AccessTTL)
	authorizer := service.NewAuthorizer(service.DefaultPolicy)

	c := &Container{Metrics: m, Logger: sysLogger}

	// 2. Infrastructure
	sessions := c.newSessionRepository(cfg)
	publisher, subscriber := c.newEventBus(cfg)

	// 3. Services
	productMapper := mapper.NewProductMapper()
	categoryMapper := mapper.NewCategoryMapper(productMapper)
	userMapper := mapper.NewUserMapper()

	productService := service.NewProductService(uowFactory, productMapper, publisher,
		service.NewObserver("ProductService", authorizer, sysLogger, m))
	categoryService := service.NewCategoryService(uowFactory, categoryMapper, publisher,
		service.NewObserver("CategoryService", authorizer, sysLogger, m))
	userService := service.NewUserService(uowFactory, userMapper, publisher,
		service.NewObserver("UserService", authorizer, sysLogger, m))
	authService := service.NewAuthService(uowFactory, sessions, issuer, cfg.Auth.RefreshTTL, userMapper, publisher,
		service.NewObserver("AuthService", authorizer, sysLogger, m))

	// 4. Controllers
	c.ProductController = controller.NewProductController(productService, issuer)
	c.CategoryController = controller.NewCategoryController(categoryService, issuer)
	c.UserController = controller.NewUserController(userService, issuer)
	c.AuthController = controller.NewAuthController(authService)
	c.AuditConsumer = service.NewAuditConsumerService(subscriber, auditLogger)

	c.closers = append(c.closers, func() {
		_ = auditLogger.Sync()
		_ = sysLogger.Sync()
	})
	return c
}

func (c *Container) newSessionRepository(cfg *config.Config) contract.SessionRepository {
	if cfg.Sessions.Store != config.SessionStoreRedis {
		log.Printf("[INFO] Using Session Store: MEMORY")
		return memory.NewSessionRepository(cfg.Auth.RefreshTTL)
	}

	opt, err := redis.ParseURL(cfg.Sessions.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.Sessions.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })

	log.Printf("[INFO] Using Session Store: REDIS")
	return redisstore.NewSessionRepository(rdb)
}

// newEventBus falls back to the in-process bus when NATS is unreachable.
func (c *Container) newEventBus(cfg *config.Config) (events.Publisher, events.Subscriber) {
	if cfg.Events.Bus == config.EventBusNats {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL, c.Logger)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
		natsSub, subErr := pktNats.NewSubscriber(cfg.Events.NatsURL, cfg.Events.Durable, c.Logger)
		if subErr != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", subErr)
		}
		if err == nil && subErr == nil {
			c.closers = append(c.closers, natsPub.Close, natsSub.Close)
			log.Printf("[INFO] Using Event Bus: NATS (%s)", cfg.Events.NatsURL)
			return natsPub, natsSub
		}
		if natsPub != nil {
			natsPub.Close()
		}
		if natsSub != nil {
			natsSub.Close()
		}
	}

	bus := events.NewChannelBus(channelTopic, watermill.NewStdLogger(false, false))
	c.closers = append(c.closers, func() { _ = bus.Close() })
	log.Printf("[INFO] Using Event Bus: CHANNEL")
	return bus, bus
}

// Close releases the connections opened by NewContainer, newest first.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
