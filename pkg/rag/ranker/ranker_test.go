package ranker

import (
	"testing"

	"sales-assistant-bot/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankChunks_OrdersByRelevance(t *testing.T) {
	chunks := []string{
		"Política de envíos a todo el país",
		"Laptop Lenovo IdeaPad con procesador Ryzen",
		"Laptop HP con procesador Intel i5 y 8GB de memoria",
	}

	got := RankChunks(chunks, "laptop con procesador intel", 2)

	require.Len(t, got, 2)
	assert.Equal(t, chunks[2], got[0])
	assert.Equal(t, chunks[1], got[1])
}

func TestRankChunks_NoMatchesKeepsOrder(t *testing.T) {
	chunks := []string{"uno", "dos", "tres", "cuatro"}

	got := RankChunks(chunks, "impresora", 0)

	assert.Equal(t, chunks, got)
}

func TestRankChunks_Empty(t *testing.T) {
	assert.Empty(t, RankChunks(nil, "laptop", 5))
}

func TestScoreChunks_PriceProximityAddsScore(t *testing.T) {
	chunks := []string{"Monitor Samsung S/ 1050"}

	withPrice := ScoreChunks(chunks, "monitor 1000")
	withoutPrice := ScoreChunks(chunks, "monitor")

	require.Len(t, withPrice, 1)
	require.Len(t, withoutPrice, 1)
	assert.Greater(t, withPrice[0].Score, withoutPrice[0].Score)
	assert.InDelta(t, withoutPrice[0].Score+2, withPrice[0].Score, 1e-9)
}

func TestScoreChunks_CoOccurrenceBoost(t *testing.T) {
	// "laptop" (6 runes) twice = 4, "gamer" (5 runes) once = 5/3.
	// Both terms match, so the sum is multiplied by 1 + 2/2.
	scored := ScoreChunks([]string{"laptop gamer, laptop"}, "laptop gamer")

	require.Len(t, scored, 1)
	assert.InDelta(t, (4.0+5.0/3.0)*2, scored[0].Score, 1e-9)
}

func TestRankProducts(t *testing.T) {
	cheapMouse := &entity.Product{Code: "M1", Name: "Mouse", Category: "mouse", Price: 30}
	laptop := &entity.Product{Code: "L1", Name: "Laptop HP", Description: "Intel i5", Category: "laptop", Price: 2500}
	tablet := &entity.Product{Code: "T1", Name: "Tablet", Category: "tablet", Price: 900}

	got := RankProducts([]*entity.Product{cheapMouse, tablet, laptop}, []string{"laptop", "intel"}, []string{"laptop"})

	assert.Equal(t, []*entity.Product{laptop, cheapMouse, tablet}, got)
	assert.Equal(t, 4, ScoreProduct(laptop, []string{"laptop", "intel"}, []string{"laptop"}))
}
