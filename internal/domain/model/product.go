package model

// 商品（カタログ由来・不変）
// JSONタグは永続blobの形そのまま。
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	DataAIHint  string  `json:"dataAiHint,omitempty"`
}
