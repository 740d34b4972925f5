package auth

import (
	"time"

	"shopstream/internal/domain/model"
)

// クレデンシャル（トークン）を発行する約束
type TokenIssuer interface {
	Issue(user model.User, now time.Time) (string, error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// パスワードをハッシュ化する約束
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// ID生成の約束
type IDGenerator interface {
	NewID() string
}

// 現在時刻の約束
type Clock interface {
	Now() time.Time
}
