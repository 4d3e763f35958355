package dto

type ProductResponse struct {
	Code        string  `json:"codigo"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion,omitempty"`
	Price       float64 `json:"precio"`
	Stock       int     `json:"stock"`
	Category    string  `json:"categoria"`
	ImageURL    string  `json:"imagen_url,omitempty"`
}

type SearchFiltersResponse struct {
	Keywords   []string `json:"keywords"`
	Categories []string `json:"categories"`
	PriceMin   *float64 `json:"price_min,omitempty"`
	PriceMax   *float64 `json:"price_max,omitempty"`
}

type ProductSearchResponse struct {
	Query    string                `json:"query"`
	Found    bool                  `json:"found"`
	Message  string                `json:"message"`
	Strategy string                `json:"strategy,omitempty"`
	Filters  SearchFiltersResponse `json:"filters"`
	Products []ProductResponse     `json:"products"`
}
