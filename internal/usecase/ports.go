package usecase

import "context"

// 通知の種別
type NotificationKind string

const (
	NotificationInfo        NotificationKind = "info"
	NotificationDestructive NotificationKind = "destructive"
)

// トースト等の通知面への送りっぱなし通知。戻り値は当てにしない。
type Notifier interface {
	Notify(kind NotificationKind, title string, description string)
}

// 画面遷移の依頼（送りっぱなし）
type Navigator interface {
	NavigateTo(path string)
}

// 商品レコメンドの外部コラボレーター。中身は不透明で、失敗し得る。
type Recommender interface {
	Recommend(ctx context.Context, interests string) (string, error)
}

// usecaseがValidatorInterfaceに依存する約束
type StorefrontValidator interface {
	ValidateLogin(ctx context.Context, email string, password string) error
	ValidateInterests(ctx context.Context, interests string) error
}
