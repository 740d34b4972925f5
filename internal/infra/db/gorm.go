package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect はプロファイル用のsqliteファイルを開いて *gorm.DB を返す。
func Connect(path string) (*gorm.DB, error) {
	if path == "" {
		path = "shopstream.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
