package catalog

import (
	"context"
	"fmt"

	"sales-assistant-bot/internal/entity"
	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/internal/repository/contract"
	"sales-assistant-bot/internal/repository/specification"
	"sales-assistant-bot/pkg/rag/ranker"
	"sales-assistant-bot/pkg/search"
)

const (
	MsgNoTerms    = "No se encontraron términos válidos para buscar"
	MsgNoProducts = "No se encontraron productos que coincidan con tu búsqueda"
	msgDBError    = "Error consultando base de datos: %v"
)

// Config holds the price heuristics.
type Config struct {
	SinglePriceBand float64
	StrictWiden     float64
	LooseWiden      float64
}

func DefaultConfig() Config {
	return Config{
		SinglePriceBand: search.DefaultSinglePriceBand,
		StrictWiden:     0.05,
		LooseWiden:      0.15,
	}
}

// Result is what the product half of a query produced. Message is always
// set and is suitable for logs and diagnostics.
type Result struct {
	Success  bool
	Products []*entity.Product
	Message  string
	Filters  search.QueryFilters
	Strategy string
}

type Searcher struct {
	repo       contract.ProductRepository
	parser     search.Parser
	strategies []Strategy
	logger     logger.ILogger
}

// NewSearcher builds a searcher over repo. A nil repo is allowed and makes
// every search report the database as unavailable.
func NewSearcher(repo contract.ProductRepository, cfg Config, log logger.ILogger) *Searcher {
	return &Searcher{
		repo:       repo,
		parser:     search.Parser{SinglePriceBand: cfg.SinglePriceBand},
		strategies: DefaultStrategies(cfg),
		logger:     log,
	}
}

// Search resolves a free-text question into catalog products using the
// first strategy that returns anything. It never returns an error; failures
// come back as an unsuccessful Result.
func (s *Searcher) Search(ctx context.Context, query string) Result {
	filters := s.parser.Parse(query)

	s.logger.Info("CatalogSearch", "Query analysed", map[string]interface{}{
		"keywords":   filters.Keywords,
		"categories": filters.Categories,
		"price_min":  filters.PriceMin,
		"price_max":  filters.PriceMax,
	})

	if filters.IsEmpty() {
		return Result{Message: MsgNoTerms, Filters: filters}
	}

	if s.repo == nil {
		return s.failure(filters, fmt.Errorf("conexión no disponible"))
	}

	for _, strategy := range s.strategies {
		cond, ok := strategy.Build(filters)
		if !ok {
			continue
		}

		products, err := s.repo.FindAll(ctx, cond, specification.CheapestFirst)
		if err != nil {
			return s.failure(filters, err)
		}

		s.logger.Debug("CatalogSearch", "Strategy executed", map[string]interface{}{
			"strategy": strategy.Name,
			"found":    len(products),
		})

		if len(products) == 0 {
			continue
		}

		if strategy.Rerank && filters.HasTerms() {
			products = ranker.RankProducts(products, filters.Keywords, filters.Categories)
		}

		s.logger.Info("CatalogSearch", "Products found", map[string]interface{}{
			"strategy": strategy.Name,
			"count":    len(products),
		})

		return Result{
			Success:  true,
			Products: products,
			Message:  fmt.Sprintf(strategy.Message, len(products)),
			Filters:  filters,
			Strategy: strategy.Name,
		}
	}

	return Result{Message: MsgNoProducts, Filters: filters}
}

func (s *Searcher) failure(filters search.QueryFilters, err error) Result {
	s.logger.Error("CatalogSearch", "Database query failed", map[string]interface{}{
		"error": err.Error(),
	})
	return Result{
		Message: fmt.Sprintf(msgDBError, err),
		Filters: filters,
	}
}
