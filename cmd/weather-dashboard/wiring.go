package main

import (
	"context"
	"fmt"
	"time"

	"weather-dashboard/internal/domain/gateway/notify"
	"weather-dashboard/internal/domain/gateway/storage"
	"weather-dashboard/internal/infra/aws"
	"weather-dashboard/internal/infra/database"
	"weather-dashboard/internal/infra/database/gorm"
	"weather-dashboard/internal/infra/database/sqlc"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"
	"weather-dashboard/pkg/resource"
)

// infrastructure opens shared clients on first use and closes them on shutdown
type infrastructure struct {
	redisClient *redis.Client
	closers     []func() error
}

func (infra *infrastructure) redis() *redis.Client {
	if infra.redisClient == nil {
		config := redis.NewRedisConfig().
			WithHost(resource.GetString("app.redis.host")).
			WithPort(resource.GetInt("app.redis.port")).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database"))
		infra.redisClient = redis.NewClient(config)
		infra.closers = append(infra.closers, infra.redisClient.Close)
	}
	return infra.redisClient
}

func (infra *infrastructure) close() {
	for i := len(infra.closers) - 1; i >= 0; i-- {
		if err := infra.closers[i](); err != nil {
			log.Warnf("Failed to close resource: %v", err)
		}
	}
}

func databaseConfig() database.Config {
	return database.Config{
		Host:     resource.GetString("app.db.host"),
		Port:     resource.GetString("app.db.port"),
		Username: resource.GetString("app.db.username"),
		Password: resource.GetString("app.db.password"),
		Database: resource.GetString("app.db.database"),
		Schema:   resource.GetString("app.db.schema"),
	}
}

// newStorageGateway builds the driver named by app.storage.driver
func (infra *infrastructure) newStorageGateway(ctx context.Context) (storage.StorageGateway, error) {
	driver := resource.GetString("app.storage.driver")

	switch driver {
	case "memory":
		return storage.NewMemoryStorageGateway(), nil

	case "file":
		return storage.NewFileStorageGateway(resource.GetString("app.storage.file.path")), nil

	case "redis":
		return storage.NewRedisStorageGateway(infra.redis()), nil

	case "postgres":
		db, err := sqlc.Open(ctx, databaseConfig())
		if err != nil {
			return nil, err
		}
		infra.closers = append(infra.closers, db.Close)

		gateway := storage.NewSQLCStorageGateway(db)
		if err := gateway.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("failed to create storage table: %w", err)
		}
		return gateway, nil

	case "gorm":
		db, err := gorm.Open(databaseConfig())
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			infra.closers = append(infra.closers, sqlDB.Close)
		}

		gateway := storage.NewGormStorageGateway(db)
		if err := gateway.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate storage table: %w", err)
		}
		return gateway, nil
	}

	return nil, fmt.Errorf("%w: %q", storage.ErrUnknownDriver, driver)
}

// newNotifier fans notifications out to the log and every configured sink
func (infra *infrastructure) newNotifier(ctx context.Context, feed *notify.FeedNotifier) (notify.Notifier, error) {
	notifiers := notify.MultiNotifier{notify.NewLogNotifier()}

	for _, sink := range resource.GetStringSlice("app.notify.sinks") {
		switch sink {
		case "log":
		case "feed":
			notifiers = append(notifiers, feed)

		case "redis":
			publisher := redis.NewPublisher(infra.redis().GetClient(), redis.NewPubSubConfig())
			notifiers = append(notifiers, notify.NewRedisNotifier(publisher, resource.GetString("app.notify.redis-channel")))

		case "sqs":
			awsConfig, err := aws.LoadConfig(ctx, aws.Config{
				Region:          resource.GetString("app.cloud.aws-region"),
				Endpoint:        resource.GetString("app.cloud.aws-endpoint"),
				AccessKeyID:     resource.GetString("app.cloud.aws-access-key-id"),
				SecretAccessKey: resource.GetString("app.cloud.aws-secret-access-key"),
			})
			if err != nil {
				return nil, err
			}
			sender := aws.NewSQSSender(aws.NewSqsClient(awsConfig))
			notifiers = append(notifiers, notify.NewQueueNotifier(sender, resource.GetString("app.notify.sqs-queue")))

		default:
			log.Warn(msg.GetMessage("notify.unknown-sink", sink))
		}
	}

	return notifiers, nil
}

// dashboardLocation is the time zone cards render their time of day in
func dashboardLocation() *time.Location {
	name := resource.GetString("app.dashboard.timezone")
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Warnf("Unknown dashboard time zone %q, using UTC: %v", name, err)
		return time.UTC
	}
	return location
}
