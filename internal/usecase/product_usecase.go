package usecase

import (
	"context"
	"errors"
	"strings"

	"shopstream/internal/domain/model"
	"shopstream/internal/repository"
)

// ProductUsecase はカタログの閲覧・検索。
type ProductUsecase struct {
	products repository.ProductRepository
}

// DI
func NewProductUsecase(products repository.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

// List はカタログ全件を定義順で返す。
func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Get は商品を1件返す。
func (u *ProductUsecase) Get(ctx context.Context, id string) (model.Product, error) {
	if strings.TrimSpace(id) == "" {
		return model.Product{}, ErrValidation
	}

	p, err := u.products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Product{}, ErrProductNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// Search は名前・説明の部分一致（大文字小文字は無視）とカテゴリで絞り込む。
// category が空か "all" ならカテゴリでは絞らない。
func (u *ProductUsecase) Search(ctx context.Context, query string, category string) ([]model.Product, error) {
	all, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Categories は初出順のカテゴリ一覧を返す。
func (u *ProductUsecase) Categories(ctx context.Context) ([]string, error) {
	all, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(all))
	out := make([]string, 0, len(all))
	for _, p := range all {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out, nil
}
