package usecase

import "errors"

var (
	// 入力不正
	ErrValidation = errors.New("validation error")
	// 認証が必要
	ErrUnauthorized = errors.New("unauthorized")
	// メールまたはパスワードが違う
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ログイン処理が既に進行中（二重送信）
	ErrLoginInFlight = errors.New("login already in flight")
	// hydrate完了前の変更操作
	ErrNotHydrated = errors.New("store not hydrated")
	// カートが空
	ErrEmptyCart = errors.New("cart is empty")
	// 商品が見つからない
	ErrProductNotFound = errors.New("product not found")
	// レコメンド取得失敗（リトライ可能）
	ErrRecommendationUnavailable = errors.New("recommendations unavailable")
)
