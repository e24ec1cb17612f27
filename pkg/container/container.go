package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lilfrek386-a11y/library/internal/config"
	infracache "github.com/lilfrek386-a11y/library/internal/infrastructure/cache"
	"github.com/lilfrek386-a11y/library/internal/infrastructure/database"
	"github.com/lilfrek386-a11y/library/pkg/cache"

	authorHandler "github.com/lilfrek386-a11y/library/internal/domains/author/handler"
	authorRepo "github.com/lilfrek386-a11y/library/internal/domains/author/repository"
	authorService "github.com/lilfrek386-a11y/library/internal/domains/author/service"

	"github.com/lilfrek386-a11y/library/internal/domains/author"
	"github.com/lilfrek386-a11y/library/internal/domains/book"
	bookHandler "github.com/lilfrek386-a11y/library/internal/domains/book/handler"
	bookRepo "github.com/lilfrek386-a11y/library/internal/domains/book/repository"
	bookService "github.com/lilfrek386-a11y/library/internal/domains/book/service"
)

// Container holds the application's dependency graph.
// Initialization order: config -> infrastructure -> repositories ->
// services -> handlers. All components are singletons for the process
// lifetime; the cache client is owned here and injected everywhere it is
// used, never referenced as a global.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	KeyBuilder  *cache.KeyBuilder
	Invalidator *cache.Invalidator

	AuthorRepo author.Repository
	BookRepo   book.Repository

	AuthorService author.Service
	BookService   book.Service

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainer builds and initializes the dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	if err := c.initDatabase(); err != nil {
		return nil, err
	}

	if err := c.initCache(); err != nil {
		return nil, err
	}

	c.KeyBuilder = cache.NewKeyBuilder(cfg.Cache.Prefix)
	c.Invalidator = cache.NewInvalidator(c.Cache)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("Container initialized")
	return c, nil
}

func (c *Container) initDatabase() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	return nil
}

func (c *Container) initCache() error {
	if c.Config.Cache.Backend == "memory" {
		log.Info().Msg("Using in-memory cache backend")
		c.Cache = cache.NewMemory()
		return nil
	}

	redisCache := infracache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	// A cache outage is not fatal: requests run uncached and invalidation
	// failures are logged until Redis comes back.
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed (non-critical)")
	}

	c.Cache = redisCache
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	namespaces := c.Config.Cache.Namespaces

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.Invalidator, namespaces)

	validator := book.NewAuthorValidator(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, validator, c.Invalidator, namespaces)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("Database connections closed")
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close cache")
		} else {
			log.Info().Msg("Cache connections closed")
		}
	}
}
