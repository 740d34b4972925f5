package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// GeminiRecommender はGeminiでレコメンド文面を生成する。
type GeminiRecommender struct {
	client *genai.Client
	model  string
}

func NewGeminiRecommender(ctx context.Context, apiKey string, model string) (*GeminiRecommender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiRecommender{
		client: client,
		model:  model,
	}, nil
}

// Recommend は興味テキストからおすすめ商品の説明文を1回だけ生成する。
func (r *GeminiRecommender) Recommend(ctx context.Context, interests string) (string, error) {
	prompt := fmt.Sprintf(
		"You are a product recommendation assistant for an online storefront. "+
			"Based on the customer's interests and recent browsing below, suggest a short list "+
			"of product ideas they might like, with one sentence per suggestion.\n\n"+
			"Customer interests: %s",
		interests,
	)

	result, err := r.client.Models.GenerateContent(ctx, r.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty recommendation response")
	}
	return text, nil
}
