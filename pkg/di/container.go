package di

import (
	"fmt"

	"gorm.io/gorm"

	"companydocs/application/serviceimpl"
	"companydocs/domain/ports"
	"companydocs/domain/repositories"
	"companydocs/domain/services"
	"companydocs/infrastructure/memlock"
	"companydocs/infrastructure/postgres"
	redispkg "companydocs/infrastructure/redis"
	"companydocs/infrastructure/storage"
	"companydocs/interfaces/api/handlers"
	"companydocs/pkg/config"
	"companydocs/pkg/logger"
	"companydocs/pkg/scheduler"
)

type Container struct {
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // optional; locks fall back in-process
	Storage        ports.StoragePort
	Locks          ports.LockPort
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository    repositories.UserRepository
	CompanyRepository repositories.CompanyRepository
	FileRepository    repositories.FileRepository
	TokenRepository   repositories.TokenRepository

	// Services
	AuthService    services.AuthService
	UserService    services.UserService
	CompanyService services.CompanyService
	FileService    services.FileService
	SweepService   services.SweepService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized", "level", c.Config.Log.Level, "format", c.Config.Log.Format)
	return nil
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	s3Storage, err := storage.NewS3Storage(storage.S3StorageConfig{
		Endpoint:  c.Config.Storage.Endpoint,
		AccessKey: c.Config.Storage.AccessKey,
		SecretKey: c.Config.Storage.SecretKey,
		Bucket:    c.Config.Storage.Bucket,
		UseSSL:    c.Config.Storage.UseSSL,
		Region:    c.Config.Storage.Region,
		PublicURL: c.Config.Storage.PublicURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.Storage = s3Storage
	logger.Info("Storage initialized", "endpoint", c.Config.Storage.Endpoint, "bucket", c.Config.Storage.Bucket)

	// Redis backs the per-file lock; without it, locking is per process only
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(redispkg.Config{
			URL:      c.Config.Redis.URL,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.RedisClient = redisClient
		c.Locks = redispkg.NewLock(redisClient)
		logger.Info("Redis lock initialized", "url", c.Config.Redis.URL)
	} else {
		c.Locks = memlock.New()
		logger.Info("In-process lock initialized (REDIS_URL not set)")
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.CompanyRepository = postgres.NewCompanyRepository(c.DB)
	c.FileRepository = postgres.NewFileRepository(c.DB)
	c.TokenRepository = postgres.NewTokenRepository(c.DB)
}

func (c *Container) initServices() {
	c.AuthService = serviceimpl.NewAuthService(c.UserRepository, c.TokenRepository, c.Config.JWT.Secret, c.Config.JWT.TTL)
	c.UserService = serviceimpl.NewUserService(c.UserRepository)
	c.CompanyService = serviceimpl.NewCompanyService(c.CompanyRepository)
	c.FileService = serviceimpl.NewFileService(c.FileRepository, c.CompanyService, c.Storage, c.Locks)
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	c.SweepService = serviceimpl.NewSweepService(serviceimpl.SweepConfig{
		Cron:  c.Config.Sweep.Cron,
		Grace: c.Config.Sweep.Grace,
	}, c.FileRepository, c.Storage, c.EventScheduler)

	if !c.Config.Sweep.Enabled {
		logger.Info("Orphan sweep disabled")
		return nil
	}

	if err := c.SweepService.RegisterJob(); err != nil {
		return fmt.Errorf("failed to register sweep job: %w", err)
	}

	c.EventScheduler.Start()
	logger.Info("Orphan sweep scheduled", "cron", c.Config.Sweep.Cron, "grace", c.Config.Sweep.Grace)
	return nil
}

func (c *Container) Handlers() *handlers.Handlers {
	return handlers.NewHandlers(&handlers.Services{
		AuthService:    c.AuthService,
		UserService:    c.UserService,
		CompanyService: c.CompanyService,
		FileService:    c.FileService,
		MaxUploadSize:  c.Config.Storage.MaxUploadSize,
	})
}

func (c *Container) Cleanup() {
	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close redis client", "error", err)
		}
	}

	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	logger.Info("Container cleaned up")
}
