package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestParseQueryFilters_Price(t *testing.T) {
	tests := []struct {
		name string
		text string
		min  *float64
		max  *float64
	}{
		{name: "upper bound", text: "menos de 250", min: nil, max: ptr(250)},
		{name: "upper bound from context word", text: "monitor barato 500", min: nil, max: ptr(500)},
		{name: "lower bound", text: "más de 1000", min: ptr(1000), max: nil},
		{name: "explicit range", text: "entre 100 y 300", min: ptr(100), max: ptr(300)},
		{name: "reversed range", text: "de 900 a 400", min: ptr(400), max: ptr(900)},
		{name: "single price band", text: "laptop de 2500", min: ptr(2250), max: ptr(2750)},
		{name: "band rounds half to even", text: "cable de 25", min: ptr(23), max: ptr(27)},
		{name: "no price", text: "laptop gamer", min: nil, max: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseQueryFilters(tt.text)
			assert.Equal(t, tt.min, f.PriceMin)
			assert.Equal(t, tt.max, f.PriceMax)
		})
	}
}

func TestParseQueryFilters_KeywordsAndCategories(t *testing.T) {
	f := ParseQueryFilters("¿Qué laptop tienen con procesador intel, para trabajo?")

	assert.Equal(t, []string{"qué", "laptop", "tienen", "procesador", "intel", "trabajo"}, f.Keywords)
	assert.Equal(t, []string{"laptop"}, f.Categories)
	assert.False(t, f.HasPrice())
}

func TestParseQueryFilters_CategoryAsSubstring(t *testing.T) {
	f := ParseQueryFilters("busco una smarttv")

	require.Equal(t, []string{"tv"}, f.Categories)
	assert.Equal(t, []string{"busco", "smarttv"}, f.Keywords)
}

func TestParseQueryFilters_Empty(t *testing.T) {
	f := ParseQueryFilters("y la de")
	assert.True(t, f.IsEmpty())
}

func TestParser_CustomBand(t *testing.T) {
	f := Parser{SinglePriceBand: 0.20}.Parse("precio 1000")
	require.NotNil(t, f.PriceMin)
	require.NotNil(t, f.PriceMax)
	assert.Equal(t, 800.0, *f.PriceMin)
	assert.Equal(t, 1200.0, *f.PriceMax)
}
