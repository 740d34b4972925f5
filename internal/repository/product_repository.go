package repository

import (
	"context"
	"errors"

	"shopstream/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カタログの取得だけを約束（プロセス中は不変・順序固定）。
type ProductRepository interface {
	// 定義順で全商品を返す
	List(ctx context.Context) ([]model.Product, error)
	// IDから商品を1件取得する
	FindByID(ctx context.Context, id string) (model.Product, error)
}
