package validator

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"shopstream/internal/usecase"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)

// 興味テキストの最低文字数
const MinInterestLength = 10

type storefrontValidator struct{}

// Usecaseは interface を依存注入
func NewStorefrontValidator() usecase.StorefrontValidator {
	return &storefrontValidator{}
}

// ログインの入力を検証
func (v *storefrontValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return ErrInvalidInput
	}

	return nil
}

// レコメンド用の興味テキストを検証（最低10文字）
func (v *storefrontValidator) ValidateInterests(ctx context.Context, interests string) error {
	if len(strings.TrimSpace(interests)) < MinInterestLength {
		return ErrInvalidInput
	}
	return nil
}

// ParseQuantity は自由入力の数量をパースする。不正な値は1にフォールバック。
// 上限はあえて設けない。
func ParseQuantity(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}
