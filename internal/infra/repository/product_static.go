package repository

import (
	"context"

	"shopstream/internal/domain/model"
	repo "shopstream/internal/repository"
)

// StaticProductRepository は静的カタログの読み取り専用実装。
type StaticProductRepository struct {
	products []model.Product
}

// DI
func NewStaticProductRepository(products []model.Product) *StaticProductRepository {
	return &StaticProductRepository{
		products: append([]model.Product(nil), products...),
	}
}

func (r *StaticProductRepository) List(ctx context.Context) ([]model.Product, error) {
	return append([]model.Product(nil), r.products...), nil
}

func (r *StaticProductRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}
