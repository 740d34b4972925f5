package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"shopstream/internal/catalog"
	infraRepo "shopstream/internal/infra/repository"
)

func newProductFixture() *ProductUsecase {
	return NewProductUsecase(infraRepo.NewStaticProductRepository(catalog.Products()))
}

func TestProductList_StableOrder(t *testing.T) {
	ctx := context.Background()
	uc := newProductFixture()

	first, err := uc.List(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := uc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProductGet(t *testing.T) {
	ctx := context.Background()
	uc := newProductFixture()

	p, err := uc.Get(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, "Aero Running Shoes", p.Name)

	_, err = uc.Get(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = uc.Get(ctx, "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProductSearch_ByQuery(t *testing.T) {
	ctx := context.Background()
	uc := newProductFixture()

	// 大文字小文字は無視して名前・説明を部分一致
	results, err := uc.Search(ctx, "SHOES", "")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Aero Running Shoes", results[0].Name)

	results, err = uc.Search(ctx, "wireless", "")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Noise-Cancelling Headphones", results[0].Name)
}

func TestProductSearch_ByCategory(t *testing.T) {
	ctx := context.Background()
	uc := newProductFixture()

	results, err := uc.Search(ctx, "", "Electronics")
	assert.NoError(t, err)
	assert.NotEmpty(t, results)
	for _, p := range results {
		assert.Equal(t, "Electronics", p.Category)
	}

	// "all" は絞り込みなし
	all, err := uc.Search(ctx, "", "all")
	assert.NoError(t, err)
	full, err := uc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, full, all)
}

func TestProductSearch_QueryAndCategory(t *testing.T) {
	ctx := context.Background()
	uc := newProductFixture()

	results, err := uc.Search(ctx, "keyboard", "Electronics")
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = uc.Search(ctx, "keyboard", "Books")
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestProductCategories_FirstSeenOrder(t *testing.T) {
	ctx := context.Background()
	uc := newProductFixture()

	cats, err := uc.Categories(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Sportswear", "Outdoor", "Electronics", "Books", "Home & Kitchen"}, cats)
}
