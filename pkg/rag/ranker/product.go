package ranker

import (
	"sort"
	"strings"

	"sales-assistant-bot/internal/entity"
)

type ScoredProduct struct {
	Product *entity.Product
	Score   int
}

// ScoreProduct counts keyword hits anywhere in the product text plus two
// points per category found in the product's category.
func ScoreProduct(p *entity.Product, keywords, categories []string) int {
	haystack := strings.ToLower(p.SearchText())
	category := strings.ToLower(p.Category)

	score := 0
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			score++
		}
	}
	for _, cat := range categories {
		if strings.Contains(category, cat) {
			score += 2
		}
	}
	return score
}

// RankProducts reorders products by ScoreProduct, best first. Ties keep the
// incoming order, which is price ascending for catalog results.
func RankProducts(products []*entity.Product, keywords, categories []string) []*entity.Product {
	scored := make([]ScoredProduct, len(products))
	for i, p := range products {
		scored[i] = ScoredProduct{Product: p, Score: ScoreProduct(p, keywords, categories)}
	}
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	out := make([]*entity.Product, len(scored))
	for i, s := range scored {
		out[i] = s.Product
	}
	return out
}
