package model

// カートの明細
// 追加時点の商品スナップショット＋数量。同一商品IDの明細はカート内に1件まで。
type CartItem struct {
	Product
	Quantity int64 `json:"quantity"`
}
