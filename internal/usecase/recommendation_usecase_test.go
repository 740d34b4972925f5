package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecommendations_Success(t *testing.T) {
	ctx := context.Background()

	rec := &MockRecommender{}
	rec.On("Recommend", ctx, "running shoes and sportswear").
		Return("Try the Aero Running Shoes.", nil)

	uc := NewRecommendationUsecase(rec, stubValidator{}, testLogger())

	text, err := uc.Get(ctx, "running shoes and sportswear")
	assert.NoError(t, err)
	assert.Equal(t, "Try the Aero Running Shoes.", text)
	rec.AssertExpectations(t)
}

func TestRecommendations_TooShortNeverReachesCollaborator(t *testing.T) {
	ctx := context.Background()

	rec := &MockRecommender{}
	uc := NewRecommendationUsecase(rec, stubValidator{}, testLogger())

	_, err := uc.Get(ctx, "short")
	assert.Error(t, err)
	rec.AssertNotCalled(t, "Recommend", mock.Anything, mock.Anything)
}

func TestRecommendations_FailureIsRetryable(t *testing.T) {
	ctx := context.Background()

	rec := &MockRecommender{}
	rec.On("Recommend", ctx, mock.AnythingOfType("string")).
		Return("", errors.New("model overloaded"))

	uc := NewRecommendationUsecase(rec, stubValidator{}, testLogger())

	_, err := uc.Get(ctx, "smart home gadgets and lighting")
	assert.ErrorIs(t, err, ErrRecommendationUnavailable)
}
