// Package catalog is the static product data source. Products live in
// memory; there is no inventory backend and nothing here mutates after
// construction.
package catalog

import (
	"sort"
	"strings"

	"github.com/example/moldz3d/pkg/models"
)

type SortOrder string

const (
	SortFeatured  SortOrder = "featured"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortRating    SortOrder = "rating"
	SortNewest    SortOrder = "newest"
)

// Filter narrows and orders a product listing. Zero values mean "no
// constraint"; MaxPrice of 0 leaves the upper bound open.
type Filter struct {
	Category  string
	Materials []string
	MinPrice  float64
	MaxPrice  float64
	Sort      SortOrder
}

type Catalog struct {
	products []models.Product
}

// New returns the catalog loaded with the built-in storefront fixtures.
func New() *Catalog {
	return NewWithProducts(fixtures)
}

func NewWithProducts(products []models.Product) *Catalog {
	return &Catalog{products: products}
}

func (c *Catalog) Products() []models.Product {
	return append([]models.Product(nil), c.products...)
}

func (c *Catalog) Get(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (c *Catalog) Categories() []string {
	return c.distinct(func(p models.Product) string { return p.Category })
}

func (c *Catalog) Materials() []string {
	return c.distinct(func(p models.Product) string { return p.Material })
}

func (c *Catalog) distinct(field func(models.Product) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, p := range c.products {
		v := field(p)
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

// Search filters by category (loose, case-insensitive match), material
// set, and price range, then orders the result. The catalog itself is
// never reordered; callers get a copy.
func (c *Catalog) Search(f Filter) []models.Product {
	var matched []models.Product
	for _, p := range c.products {
		if !matchCategory(p, f.Category) {
			continue
		}
		if !matchMaterial(p, f.Materials) {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, f.Sort)
	return matched
}

func matchCategory(p models.Product, category string) bool {
	if category == "" {
		return true
	}
	have := strings.ToLower(p.Category)
	want := strings.ToLower(category)
	return have == want || strings.Contains(have, want)
}

func matchMaterial(p models.Product, materials []string) bool {
	if len(materials) == 0 {
		return true
	}
	for _, m := range materials {
		if strings.EqualFold(p.Material, m) {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, order SortOrder) {
	switch order {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		// Insertion order is newest-first already.
	default:
		// Featured listing: featured products bubble up, order otherwise
		// preserved.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}
