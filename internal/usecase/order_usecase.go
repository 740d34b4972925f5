package usecase

import (
	"context"

	"shopstream/internal/domain/model"
)

// 注文確認画面に出す内容
type OrderSummary struct {
	Items []model.CartItem `json:"items"`
	Total float64          `json:"total"`
	User  model.User       `json:"user"`
}

// OrderUsecase は注文確認と確定。
// バックエンドは無いので、確定＝カートを空にして完了通知を出すだけ。
type OrderUsecase struct {
	session  *SessionUsecase
	cart     *CartUsecase
	notifier Notifier
	nav      Navigator
}

// DI
func NewOrderUsecase(session *SessionUsecase, cart *CartUsecase, notifier Notifier, nav Navigator) *OrderUsecase {
	return &OrderUsecase{
		session:  session,
		cart:     cart,
		notifier: notifier,
		nav:      nav,
	}
}

// Summary は注文内容を組み立てる。未ログインならログイン画面へ誘導する。
func (u *OrderUsecase) Summary(ctx context.Context) (OrderSummary, error) {
	if !u.session.IsAuthenticated() {
		u.nav.NavigateTo("/login?redirect=/order-summary")
		return OrderSummary{}, ErrUnauthorized
	}

	items := u.cart.Items()
	if len(items) == 0 {
		return OrderSummary{}, ErrEmptyCart
	}

	user := u.session.CurrentUser()

	return OrderSummary{
		Items: items,
		Total: u.cart.GetCartTotal(),
		User:  *user,
	}, nil
}

// Confirm は注文を確定する。カートを空にし、完了通知を出してトップへ戻す。
func (u *OrderUsecase) Confirm(ctx context.Context) error {
	if !u.session.IsAuthenticated() {
		u.nav.NavigateTo("/login?redirect=/order-summary")
		return ErrUnauthorized
	}
	if u.cart.GetItemCount() == 0 {
		return ErrEmptyCart
	}

	u.cart.ClearCart(ctx)
	u.notifier.Notify(NotificationInfo, "Order Confirmed!",
		"Thank you for your purchase. Your order is being processed.")
	u.nav.NavigateTo("/")
	return nil
}
