package main

import (
	"context"
	"fmt"

	"sales-assistant-bot/internal/entity"
	"sales-assistant-bot/internal/repository/specification"
	"sales-assistant-bot/internal/repository/unitofwork"
)

var demoCatalog = []*entity.Product{
	{Code: "LP-001", Name: "Laptop Lenovo IdeaPad 3", Description: "Intel Core i5, 8GB RAM, SSD 512GB, pantalla 15.6\"", Price: 2499.00, Stock: 8, Category: "laptop", ImageURL: "https://cdn.example.com/productos/lp-001.jpg"},
	{Code: "LP-002", Name: "Laptop HP Pavilion 14", Description: "AMD Ryzen 7, 16GB RAM, SSD 1TB", Price: 3299.00, Stock: 4, Category: "laptop", ImageURL: "https://cdn.example.com/productos/lp-002.jpg"},
	{Code: "LP-003", Name: "Laptop ASUS VivoBook Go", Description: "Intel Celeron, 4GB RAM, ideal para estudiantes", Price: 1199.00, Stock: 12, Category: "laptop"},
	{Code: "CL-001", Name: "Celular Samsung Galaxy A54", Description: "128GB, cámara triple de 50MP", Price: 1499.00, Stock: 15, Category: "celular", ImageURL: "https://cdn.example.com/productos/cl-001.jpg"},
	{Code: "CL-002", Name: "Celular Xiaomi Redmi Note 13", Description: "256GB, carga rápida 33W", Price: 999.00, Stock: 20, Category: "celular"},
	{Code: "MN-001", Name: "Monitor LG 24\" IPS", Description: "Full HD, 75Hz, HDMI", Price: 549.00, Stock: 10, Category: "monitor", ImageURL: "https://cdn.example.com/productos/mn-001.jpg"},
	{Code: "TV-001", Name: "Televisor Samsung 55\" 4K", Description: "Smart TV Crystal UHD", Price: 2199.00, Stock: 5, Category: "televisor", ImageURL: "https://cdn.example.com/productos/tv-001.jpg"},
	{Code: "TC-001", Name: "Teclado mecánico Redragon Kumara", Description: "Switches rojos, retroiluminado", Price: 189.00, Stock: 25, Category: "teclado"},
	{Code: "MS-001", Name: "Mouse Logitech M170 inalámbrico", Description: "Receptor USB nano", Price: 49.90, Stock: 40, Category: "mouse"},
	{Code: "AU-001", Name: "Audífono Sony WH-CH520", Description: "Bluetooth, 50 horas de batería", Price: 229.00, Stock: 18, Category: "audífono", ImageURL: "https://cdn.example.com/productos/au-001.jpg"},
	{Code: "IM-001", Name: "Impresora Epson EcoTank L3250", Description: "Multifuncional con WiFi", Price: 799.00, Stock: 6, Category: "impresora"},
	{Code: "RT-001", Name: "Router TP-Link Archer C6", Description: "Doble banda AC1200", Price: 159.00, Stock: 14, Category: "router"},
}

// seedProducts upserts products by code inside a single transaction.
func seedProducts(ctx context.Context, factory unitofwork.RepositoryFactory, products []*entity.Product) (created, updated int, err error) {
	err = unitofwork.WithinTransaction(ctx, factory, func(uow unitofwork.UnitOfWork) error {
		repo := uow.ProductRepository()
		for _, p := range products {
			existing, err := repo.FindOne(ctx, specification.ByCode{Code: p.Code})
			if err != nil {
				return fmt.Errorf("failed to look up %s: %w", p.Code, err)
			}

			product := *p
			if existing != nil {
				if err := repo.Update(ctx, &product); err != nil {
					return fmt.Errorf("failed to update %s: %w", p.Code, err)
				}
				updated++
				continue
			}
			if err := repo.Create(ctx, &product); err != nil {
				return fmt.Errorf("failed to create %s: %w", p.Code, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return created, updated, nil
}
