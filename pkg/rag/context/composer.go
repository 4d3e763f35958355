package context

import (
	"fmt"
	"strconv"
	"strings"

	"sales-assistant-bot/internal/entity"
	"sales-assistant-bot/pkg/rag/catalog"
	"sales-assistant-bot/pkg/store"
)

const (
	// MaxProducts is how many products are written into the context.
	MaxProducts = 5
	// MaxMedia caps the images sent after an answer.
	MaxMedia = 5

	productsHeader = "### INFORMACIÓN DE BASE DE DATOS\n"
	catalogHeader  = "\n### INFORMACIÓN ADICIONAL DEL CATÁLOGO PDF\n"

	NoInformation = "No se encontró información relevante en nuestro sistema para tu consulta."
)

// Composition is the bounded context handed to the answer generator.
type Composition struct {
	Products string // database section, empty when no products
	Catalog  string // document section, empty when no chunks
	Media    []store.MediaRef
	Empty    bool
}

// Text is both sections in prompt order.
func (c Composition) Text() string {
	return c.Products + c.Catalog
}

// Compose merges the product search result and the ranked chunks. Media
// references only come from products.
func Compose(dbResult catalog.Result, chunks []string) Composition {
	var comp Composition

	if dbResult.Success && len(dbResult.Products) > 0 {
		comp.Products, comp.Media = composeProducts(dbResult.Products)
	}

	if len(chunks) > 0 {
		comp.Catalog = catalogHeader + strings.Join(chunks, "\n\n")
	}

	comp.Empty = comp.Products == "" && comp.Catalog == ""
	return comp
}

func composeProducts(products []*entity.Product) (string, []store.MediaRef) {
	var sb strings.Builder
	var media []store.MediaRef

	sb.WriteString(productsHeader)

	shown := products
	if len(shown) > MaxProducts {
		shown = shown[:MaxProducts]
	}

	for i, p := range shown {
		description := p.Description
		if description == "" {
			description = "No disponible"
		}

		fmt.Fprintf(&sb, "\nPRODUCTO %d:\n", i+1)
		fmt.Fprintf(&sb, "Código: %s\n", p.Code)
		fmt.Fprintf(&sb, "Nombre: %s\n", p.Name)
		fmt.Fprintf(&sb, "Descripción: %s\n", description)
		fmt.Fprintf(&sb, "Precio: %s\n", strconv.FormatFloat(p.Price, 'f', 2, 64))
		fmt.Fprintf(&sb, "Stock: %d\n", p.Stock)
		fmt.Fprintf(&sb, "Categoría: %s\n", p.Category)

		if p.ImageURL != "" {
			fmt.Fprintf(&sb, "Imagen: %s\n", p.ImageURL)
			if len(media) < MaxMedia {
				name := p.Name
				if name == "" {
					name = "Producto"
				}
				media = append(media, store.MediaRef{URL: p.ImageURL, Name: name})
			}
		}
	}

	if extra := len(products) - MaxProducts; extra > 0 {
		fmt.Fprintf(&sb, "\n(Y %d productos más encontrados)\n", extra)
	}

	return sb.String(), media
}
