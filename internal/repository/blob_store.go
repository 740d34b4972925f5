package repository

import "context"

// 永続ストレージ（文字列キーのblob）への読み書きを約束。
// 各ストアは自分のキー名前空間だけを触る。
type BlobStore interface {
	// キーのblobを取得する。無ければ ErrNotFound。
	Get(ctx context.Context, key string) (string, error)
	// キーのblobを丸ごと書き換える
	Set(ctx context.Context, key string, value string) error
	// キーのblobを消す。無くてもエラーにしない。
	Delete(ctx context.Context, key string) error
}
