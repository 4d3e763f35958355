package entity

type Product struct {
	Code        string
	Name        string
	Description string // empty when the catalog has none
	Price       float64
	Stock       int
	Category    string
	ImageURL    string // empty when the catalog has none
}

// SearchText joins the fields keyword relevance looks at. Callers lower-case it.
func (p *Product) SearchText() string {
	return p.Code + " " + p.Name + " " + p.Description + " " + p.Category
}
