package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// 失敗時に利用側へ出すリトライ文言
const RecommendationRetryMessage = "Sorry, we couldn't fetch recommendations at this time. Please try again later."

// RecommendationUsecase は自由記述の興味からレコメンド文面を取得する。
// レコメンドの中身は外部コラボレーター任せで、ここは入口の検証と失敗の整形だけ。
type RecommendationUsecase struct {
	recommender Recommender
	validator   StorefrontValidator
	log         *zap.Logger
}

// DI
func NewRecommendationUsecase(recommender Recommender, validator StorefrontValidator, log *zap.Logger) *RecommendationUsecase {
	return &RecommendationUsecase{
		recommender: recommender,
		validator:   validator,
		log:         log,
	}
}

// Get は検証を通った興味テキストでレコメンドを1回だけ要求する。
// 失敗はリトライ可能なエラーとして返す（自動リトライはしない）。
func (u *RecommendationUsecase) Get(ctx context.Context, interests string) (string, error) {
	if err := u.validator.ValidateInterests(ctx, interests); err != nil {
		return "", err
	}

	text, err := u.recommender.Recommend(ctx, interests)
	if err != nil {
		u.log.Warn("recommendation request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrRecommendationUnavailable, err)
	}
	return text, nil
}
