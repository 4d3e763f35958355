package mapper

import (
	"sales-assistant-bot/internal/dto"
	"sales-assistant-bot/internal/entity"
	"sales-assistant-bot/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var description, imageURL string
	if p.Descripcion != nil {
		description = *p.Descripcion
	}
	if p.ImagenURL != nil {
		imageURL = *p.ImagenURL
	}

	return &entity.Product{
		Code:        p.Codigo,
		Name:        p.Nombre,
		Description: description,
		Price:       p.Precio,
		Stock:       p.Stock,
		Category:    p.Categoria,
		ImageURL:    imageURL,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	return &model.Product{
		Codigo:      p.Code,
		Nombre:      p.Name,
		Descripcion: nullableString(p.Description),
		Precio:      p.Price,
		Stock:       p.Stock,
		Categoria:   p.Category,
		ImagenURL:   nullableString(p.ImageURL),
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (m *ProductMapper) ToResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
	}
}

func (m *ProductMapper) ToResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, m.ToResponse(p))
	}
	return out
}
