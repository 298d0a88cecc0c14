// Package container is the composition root: it constructs the
// infrastructure, repositories, services and handlers in dependency
// order, once, at startup.
package container

import (
	"context"
	"fmt"

	"github.com/scorpaust/conex-blog/internal/config"
	"github.com/scorpaust/conex-blog/internal/domains/author"
	authorHandler "github.com/scorpaust/conex-blog/internal/domains/author/handler"
	authorRepo "github.com/scorpaust/conex-blog/internal/domains/author/repository"
	authorService "github.com/scorpaust/conex-blog/internal/domains/author/service"
	"github.com/scorpaust/conex-blog/internal/domains/post"
	postHandler "github.com/scorpaust/conex-blog/internal/domains/post/handler"
	postRepo "github.com/scorpaust/conex-blog/internal/domains/post/repository"
	postService "github.com/scorpaust/conex-blog/internal/domains/post/service"
	infraCache "github.com/scorpaust/conex-blog/internal/infrastructure/cache"
	"github.com/scorpaust/conex-blog/internal/infrastructure/database"
	"github.com/scorpaust/conex-blog/pkg/cache"
	"github.com/scorpaust/conex-blog/pkg/jwt"
	"github.com/scorpaust/conex-blog/pkg/logger"
)

type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AuthorRepo author.Repository
	PostRepo   post.Repository

	AuthorService author.Service
	PostService   post.Service

	AuthorHandler *authorHandler.AuthorHandler
	PostHandler   *postHandler.PostHandler

	redis *infraCache.RedisCache
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	c := &Container{Config: cfg}

	if cfg.AuthEnabled() {
		c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	}

	switch cfg.App.Storage {
	case config.StoragePostgres:
		if err := c.initPostgres(); err != nil {
			return nil, err
		}
	case config.StorageMemory:
		c.AuthorRepo = authorRepo.NewMemoryRepository()
		c.PostRepo = postRepo.NewMemoryRepository()
	}

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.PostService = postService.NewPostService(c.PostRepo, c.AuthorRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)

	return c, nil
}

func (c *Container) initPostgres() error {
	ctx := context.Background()

	db := database.NewPostgresDB(&c.Config.Database)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redis := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if err := redis.Connect(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.redis = redis
	c.Cache = redis

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.PostRepo = postRepo.NewPostgresRepository(db.Pool, c.Cache)

	return nil
}

func (c *Container) Cleanup() {
	if c.redis != nil {
		c.redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
