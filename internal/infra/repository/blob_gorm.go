package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	repo "shopstream/internal/repository"
)

// blob_records の1行。キーごとに直近のblobを丸ごと持つ。
type BlobRecord struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

func (BlobRecord) TableName() string {
	return "blob_records"
}

// BlobGormStore は永続ストレージのGORM実装（1プロファイル＝1ファイル）。
type BlobGormStore struct {
	db *gorm.DB
}

// DI
func NewBlobGormStore(db *gorm.DB) (*BlobGormStore, error) {
	if err := db.AutoMigrate(&BlobRecord{}); err != nil {
		return nil, err
	}
	return &BlobGormStore{db: db}, nil
}

func (s *BlobGormStore) Get(ctx context.Context, key string) (string, error) {
	var rec BlobRecord

	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return rec.Value, nil
}

// 同一キーは上書き
func (s *BlobGormStore) Set(ctx context.Context, key string, value string) error {
	rec := BlobRecord{Key: key, Value: value}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).Error
}

// 無くてもエラーにしない
func (s *BlobGormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&BlobRecord{}).Error
}
