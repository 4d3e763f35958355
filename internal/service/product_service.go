package service

import (
	"context"
	"strings"

	"sales-assistant-bot/internal/dto"
	"sales-assistant-bot/internal/mapper"
	"sales-assistant-bot/pkg/rag/catalog"
)

type ProductSearcher interface {
	Search(ctx context.Context, query string) catalog.Result
}

type IProductService interface {
	Search(ctx context.Context, query string) *dto.ProductSearchResponse
}

type productService struct {
	searcher ProductSearcher
	mapper   *mapper.ProductMapper
}

func NewProductService(searcher ProductSearcher) IProductService {
	return &productService{searcher: searcher, mapper: mapper.NewProductMapper()}
}

func (s *productService) Search(ctx context.Context, query string) *dto.ProductSearchResponse {
	res := s.searcher.Search(ctx, strings.TrimSpace(query))

	return &dto.ProductSearchResponse{
		Query:    query,
		Found:    res.Success,
		Message:  res.Message,
		Strategy: res.Strategy,
		Filters: dto.SearchFiltersResponse{
			Keywords:   nonNil(res.Filters.Keywords),
			Categories: nonNil(res.Filters.Categories),
			PriceMin:   res.Filters.PriceMin,
			PriceMax:   res.Filters.PriceMax,
		},
		Products: s.mapper.ToResponses(res.Products),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
