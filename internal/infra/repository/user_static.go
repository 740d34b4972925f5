package repository

import (
	"context"
	"strings"

	"shopstream/internal/catalog"
	"shopstream/internal/domain/model"
	repo "shopstream/internal/repository"
	"shopstream/internal/usecase/auth"
)

// StaticUserRepository は静的な認証ディレクトリ。
// シードのパスワードは構築時にハッシュ化して保持する（平文保存しない）。
type StaticUserRepository struct {
	accounts []model.Account
}

// DI
func NewStaticUserRepository(seeds []catalog.SeedUser, hasher auth.PasswordHasher) (*StaticUserRepository, error) {
	accounts := make([]model.Account, 0, len(seeds))
	for _, s := range seeds {
		hash, err := hasher.Hash(s.Password)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, model.Account{
			User: model.User{
				ID:    s.ID,
				Email: s.Email,
				Name:  s.Name,
			},
			PasswordHash: hash,
		})
	}
	return &StaticUserRepository{accounts: accounts}, nil
}

func (r *StaticUserRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	email = strings.TrimSpace(email)
	for _, a := range r.accounts {
		if a.Email == email {
			account := a
			return &account, nil
		}
	}
	return nil, repo.ErrUserNotFound
}
