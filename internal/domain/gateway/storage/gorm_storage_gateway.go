package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"weather-dashboard/internal/domain/model"
)

// StorageEntry is the gorm model of one persisted key
type StorageEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StorageEntry) TableName() string {
	return "dashboard_storage"
}

type GormStorageGateway struct {
	DB *gorm.DB
}

var _ StorageGateway = (*GormStorageGateway)(nil)

func NewGormStorageGateway(db *gorm.DB) *GormStorageGateway {
	return &GormStorageGateway{DB: db}
}

// EnsureSchema migrates the storage table
func (gateway *GormStorageGateway) EnsureSchema(ctx context.Context) error {
	return gateway.DB.WithContext(ctx).AutoMigrate(&StorageEntry{})
}

func (gateway *GormStorageGateway) Get(ctx context.Context, key string) (string, bool, error) {
	var entry StorageEntry
	err := gateway.DB.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (gateway *GormStorageGateway) Set(ctx context.Context, key string, value string) error {
	entry := StorageEntry{Key: key, Value: value}
	return gateway.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (gateway *GormStorageGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return downStatus("gorm", err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		return downStatus("gorm", err)
	}
	return upStatus("gorm")
}
