package models

// Variant is one selectable variation of a product (color, model, finish).
// A variant may override the base product's price and images.
type Variant struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Model         string   `json:"model,omitempty"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	InStock       bool     `json:"in_stock"`
	Images        []string `json:"images,omitempty"`
}

type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"original_price,omitempty"`
	Image          string            `json:"image,omitempty"`
	Images         []string          `json:"images,omitempty"`
	Category       string            `json:"category"`
	Material       string            `json:"material"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	InStock        bool              `json:"in_stock"`
	Featured       bool              `json:"featured"`
	DealOfTheDay   bool              `json:"deal_of_the_day"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Variants       []Variant         `json:"variants,omitempty"`
}

// Variant returns the variant with the given id, if the product has one.
func (p Product) Variant(variantID string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == variantID {
			return v, true
		}
	}
	return Variant{}, false
}
