package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"shopstream/internal/domain/model"
	"shopstream/internal/repository"
)

// カートの永続化キー
const cartItemsKey = "shopstream_cart_items"

// 明細列に対する1回の変更。hydrate前に受けた分は積んでおいて、
// 読み込んだ明細の上に同じ順で適用し直す。
type cartOp func(items []model.CartItem) []model.CartItem

// CartUsecase は明細列の唯一の持ち主。
// 変更のたびに全量スナップショットを永続化し、合計・点数は毎回計算で出す。
type CartUsecase struct {
	mu        sync.Mutex
	items     []model.CartItem
	hydrated  bool
	hydrating bool
	pending   []cartOp

	blobs    repository.BlobStore
	notifier Notifier
	log      *zap.Logger
}

// DI
func NewCartUsecase(blobs repository.BlobStore, notifier Notifier, log *zap.Logger) *CartUsecase {
	return &CartUsecase{
		blobs:    blobs,
		notifier: notifier,
		log:      log,
	}
}

// Hydrate は永続ストレージからカートを1回だけ読み込む。
// 無い・壊れている場合は空カート（UIにエラーは出さない）。
// 読み込み完了前に受け付けた変更は読み込んだ明細の上に適用し直し、
// そこで初めて書き込む。初回の読み込みより先に書き込むことはない。
func (u *CartUsecase) Hydrate(ctx context.Context) error {
	u.mu.Lock()
	if u.hydrated || u.hydrating {
		u.mu.Unlock()
		return nil
	}
	u.hydrating = true
	u.mu.Unlock()

	var loaded []model.CartItem

	raw, err := u.blobs.Get(ctx, cartItemsKey)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal([]byte(raw), &loaded); jsonErr != nil {
			u.log.Warn("broken cart blob, starting empty", zap.Error(jsonErr))
			loaded = nil
		}
	case errors.Is(err, repository.ErrNotFound):
		// 初回起動。空のまま。
	default:
		u.log.Warn("failed to load cart", zap.Error(err))
	}

	u.mu.Lock()
	items := loaded
	replayed := len(u.pending) > 0
	for _, op := range u.pending {
		items = op(items)
	}
	u.items = items
	u.pending = nil
	u.hydrating = false
	u.hydrated = true
	snapshot := append([]model.CartItem(nil), u.items...)
	u.mu.Unlock()

	if replayed {
		u.persist(ctx, snapshot)
	}
	return nil
}

// IsLoading は hydrate 完了前かどうか。
func (u *CartUsecase) IsLoading() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return !u.hydrated
}

// AddToCart は同一商品なら数量を加算、無ければ末尾に追加する（挿入順は維持）。
// 数量は1以上。追加のたびに通知を出す。
func (u *CartUsecase) AddToCart(ctx context.Context, product model.Product, quantity int64) error {
	if quantity < 1 {
		return ErrValidation
	}

	u.mutate(ctx, func(items []model.CartItem) []model.CartItem {
		out := append([]model.CartItem(nil), items...)
		for i := range out {
			if out[i].ID == product.ID {
				out[i].Quantity += quantity
				return out
			}
		}
		return append(out, model.CartItem{Product: product, Quantity: quantity})
	})

	u.notifier.Notify(NotificationInfo, "Item Added to Cart",
		fmt.Sprintf("%s has been added to your cart.", product.Name))
	return nil
}

// RemoveFromCart は該当明細を削除する。明細が無くてもエラーにはせず、
// 通知も出す（既存画面の挙動に合わせた意図的な仕様）。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, productID string) {
	u.mutate(ctx, func(items []model.CartItem) []model.CartItem {
		out := make([]model.CartItem, 0, len(items))
		for _, it := range items {
			if it.ID != productID {
				out = append(out, it)
			}
		}
		return out
	})

	u.notifier.Notify(NotificationDestructive, "Item Removed",
		"The item has been removed from your cart.")
}

// UpdateQuantity は数量を絶対値で設定する。0以下は削除と同じ扱い。上限は設けない。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, productID string, quantity int64) {
	if quantity <= 0 {
		u.RemoveFromCart(ctx, productID)
		return
	}

	u.mutate(ctx, func(items []model.CartItem) []model.CartItem {
		out := append([]model.CartItem(nil), items...)
		for i := range out {
			if out[i].ID == productID {
				out[i].Quantity = quantity
			}
		}
		return out
	})
}

// ClearCart は全明細を消す。通知は出さない。
func (u *CartUsecase) ClearCart(ctx context.Context) {
	u.mutate(ctx, func([]model.CartItem) []model.CartItem {
		return nil
	})
}

// Items は現在の明細のコピーを挿入順で返す。
func (u *CartUsecase) Items() []model.CartItem {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]model.CartItem(nil), u.items...)
}

// GetCartTotal は現在の明細から合計金額を毎回計算する（キャッシュしない）。
func (u *CartUsecase) GetCartTotal() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	var total float64
	for _, it := range u.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// GetItemCount は数量の合計を返す。
func (u *CartUsecase) GetItemCount() int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	var count int64
	for _, it := range u.items {
		count += it.Quantity
	}
	return count
}

// 変更は「メモリ更新→全量スナップショット書き込み」をひとまとめに行う。
// hydrate完了前は書き込みを保留する（初回読み込みを上書きしない）。
func (u *CartUsecase) mutate(ctx context.Context, op cartOp) {
	u.mu.Lock()
	u.items = op(u.items)
	if !u.hydrated {
		u.pending = append(u.pending, op)
		u.mu.Unlock()
		return
	}
	snapshot := append([]model.CartItem(nil), u.items...)
	u.mu.Unlock()

	u.persist(ctx, snapshot)
}

// 永続化失敗でも操作は成立させる（メモリ上の状態が正）。
func (u *CartUsecase) persist(ctx context.Context, items []model.CartItem) {
	if items == nil {
		items = []model.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		u.log.Warn("failed to encode cart", zap.Error(err))
		return
	}
	if err := u.blobs.Set(ctx, cartItemsKey, string(raw)); err != nil {
		u.log.Warn("failed to persist cart", zap.Error(err))
	}
}
