package catalog

import "shopstream/internal/domain/model"

// Products は静的カタログを返す。プロセス開始時に定義され、以後変更されない。
func Products() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Aero Running Shoes",
			Description: "Lightweight running shoes with breathable mesh and responsive cushioning.",
			Price:       89.99,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Sportswear",
			DataAIHint:  "running shoes",
		},
		{
			ID:          "2",
			Name:        "Trail Daypack 20L",
			Description: "Compact hiking daypack with hydration sleeve and rain cover.",
			Price:       54.50,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Outdoor",
			DataAIHint:  "hiking backpack",
		},
		{
			ID:          "3",
			Name:        "Smart Home Hub",
			Description: "Voice-controlled hub that connects lights, locks and thermostats.",
			Price:       129.00,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Electronics",
			DataAIHint:  "smart home",
		},
		{
			ID:          "4",
			Name:        "Noise-Cancelling Headphones",
			Description: "Over-ear wireless headphones with 30-hour battery life.",
			Price:       199.99,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Electronics",
			DataAIHint:  "wireless headphones",
		},
		{
			ID:          "5",
			Name:        "Classic Mystery Novel Set",
			Description: "Three beloved detective classics in a collectible box set.",
			Price:       34.25,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Books",
			DataAIHint:  "mystery books",
		},
		{
			ID:          "6",
			Name:        "Ceramic Pour-Over Coffee Set",
			Description: "Hand-glazed dripper and carafe for slow mornings.",
			Price:       42.00,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Home & Kitchen",
			DataAIHint:  "coffee set",
		},
		{
			ID:          "7",
			Name:        "Yoga Mat Pro",
			Description: "Non-slip 6mm mat with alignment lines and carry strap.",
			Price:       39.75,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Sportswear",
			DataAIHint:  "yoga mat",
		},
		{
			ID:          "8",
			Name:        "Mechanical Keyboard",
			Description: "Hot-swappable tenkeyless keyboard with tactile switches.",
			Price:       109.90,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Electronics",
			DataAIHint:  "mechanical keyboard",
		},
	}
}
