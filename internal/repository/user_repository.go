package repository

import (
	"context"
	"errors"

	"shopstream/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 認証ディレクトリ（読み取り専用）を約束
type UserRepository interface {
	// メールからアカウントを1件取得する
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
}
