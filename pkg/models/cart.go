package models

// CartLine is one row in the cart: a snapshot of a product (and optionally
// one of its variants) taken at add-time, plus a quantity. Later catalog
// changes do not affect lines already in the cart.
type CartLine struct {
	ID        string   `json:"id"`
	VariantID string   `json:"variant_id,omitempty"`
	Name      string   `json:"name"`
	Category  string   `json:"category,omitempty"`
	Material  string   `json:"material,omitempty"`
	Image     string   `json:"image,omitempty"`
	Images    []string `json:"images,omitempty"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
}

// Key identifies the line within a cart. Two variants of the same base
// product get distinct keys, so they never collapse into one line.
func (l CartLine) Key() string {
	if l.VariantID == "" {
		return l.ID
	}
	return l.ID + ":" + l.VariantID
}

// Subtotal is the line's contribution to the cart total.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// NewCartLine snapshots a product into a cart line. When variant is non-nil
// its price and images replace the base product's.
func NewCartLine(p Product, variant *Variant, quantity int) CartLine {
	if quantity < 1 {
		quantity = 1
	}

	line := CartLine{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Material: p.Material,
		Image:    p.Image,
		Images:   append([]string(nil), p.Images...),
		Price:    p.Price,
		Quantity: quantity,
	}

	if variant != nil {
		line.VariantID = variant.ID
		line.Price = variant.Price
		if len(variant.Images) > 0 {
			line.Images = append([]string(nil), variant.Images...)
			line.Image = variant.Images[0]
		}
	}

	return line
}
