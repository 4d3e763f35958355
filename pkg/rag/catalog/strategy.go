package catalog

import (
	"fmt"
	"math"

	"sales-assistant-bot/internal/repository/specification"
	"sales-assistant-bot/pkg/search"
)

// Strategy is one step of the search fallback chain. Build returns false
// when the strategy has nothing to query with for the given filters.
type Strategy struct {
	Name   string
	Build  func(f search.QueryFilters) (specification.Condition, bool)
	Rerank bool
	// Message is formatted with the number of products found.
	Message string
}

// DefaultStrategies is the chain used by the bot: exact price, all terms,
// any term, then a wide price band.
func DefaultStrategies(cfg Config) []Strategy {
	return []Strategy{
		{
			Name: "price-only",
			Build: func(f search.QueryFilters) (specification.Condition, bool) {
				if !f.HasPrice() {
					return nil, false
				}
				return specification.AllOf{Conditions: priceConditions(f, 0)}, true
			},
			Rerank:  true,
			Message: "Se encontraron %d productos en el rango de precio solicitado",
		},
		{
			Name: "full-match",
			Build: func(f search.QueryFilters) (specification.Condition, bool) {
				conds := termConditions(f, cfg.StrictWiden)
				return specification.AllOf{Conditions: conds}, len(conds) > 0
			},
			Message: "Se encontraron %d productos relacionados",
		},
		{
			Name: "relaxed-match",
			Build: func(f search.QueryFilters) (specification.Condition, bool) {
				conds := termConditions(f, cfg.StrictWiden)
				return specification.AnyOf{Conditions: conds}, len(conds) > 0
			},
			Message: "Se encontraron %d productos relacionados (búsqueda ampliada)",
		},
		{
			Name: "widened-price",
			Build: func(f search.QueryFilters) (specification.Condition, bool) {
				if !f.HasPrice() {
					return nil, false
				}
				return specification.AllOf{Conditions: priceConditions(f, cfg.LooseWiden)}, true
			},
			Message: fmt.Sprintf("Se encontraron %%d productos en un rango de precio similar (±%d%%%%)",
				int(math.Round(cfg.LooseWiden*100))),
		},
	}
}

func termConditions(f search.QueryFilters, widen float64) []specification.Condition {
	var conds []specification.Condition
	if len(f.Keywords) > 0 {
		conds = append(conds, specification.KeywordMatch{Keywords: f.Keywords})
	}
	if len(f.Categories) > 0 {
		conds = append(conds, specification.CategoryMatch{Categories: f.Categories})
	}
	return append(conds, priceConditions(f, widen)...)
}

// priceConditions turns the bounds into conditions, pushing each bound
// outwards by widen of its own value. The lower bound never goes below zero.
func priceConditions(f search.QueryFilters, widen float64) []specification.Condition {
	var conds []specification.Condition
	if f.PriceMin != nil {
		lo := math.Max(0, *f.PriceMin-search.RoundHalfEven(*f.PriceMin*widen))
		conds = append(conds, specification.PriceAtLeast{Min: lo})
	}
	if f.PriceMax != nil {
		hi := *f.PriceMax + search.RoundHalfEven(*f.PriceMax*widen)
		conds = append(conds, specification.PriceAtMost{Max: hi})
	}
	return conds
}
