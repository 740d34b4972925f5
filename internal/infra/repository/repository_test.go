package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"shopstream/internal/catalog"
	repo "shopstream/internal/repository"
	"shopstream/internal/usecase/auth"
)

func TestBlobMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewBlobMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	assert.NoError(t, store.Set(ctx, "k", "v1"))
	assert.NoError(t, store.Set(ctx, "k", "v2"))

	v, err := store.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, "v2", v)

	assert.NoError(t, store.Delete(ctx, "k"))
	assert.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestStaticProductRepository(t *testing.T) {
	ctx := context.Background()
	r := NewStaticProductRepository(catalog.Products())

	list, err := r.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, catalog.Products(), list)

	p, err := r.FindByID(ctx, "3")
	assert.NoError(t, err)
	assert.Equal(t, "Smart Home Hub", p.Name)

	_, err = r.FindByID(ctx, "999")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestStaticUserRepository_HashesSeedPasswords(t *testing.T) {
	ctx := context.Background()

	r, err := NewStaticUserRepository(catalog.Users(), auth.NewBcryptPasswordHasher(4))
	assert.NoError(t, err)

	account, err := r.FindByEmail(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Test User", account.Name)

	// 平文は残らず、照合はハッシュ経由でだけ通る
	assert.NotEqual(t, "password123", account.PasswordHash)
	verifier := auth.NewBcryptPasswordVerifier()
	assert.True(t, verifier.Verify("password123", account.PasswordHash))
	assert.False(t, verifier.Verify("wrong", account.PasswordHash))

	_, err = r.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
}
