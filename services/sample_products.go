package services

import (
	"sort"
	"strings"
	"time"

	"github.com/cemerttu/backend-store-master/models"
	"github.com/cemerttu/backend-store-master/repository"
)

func boolPtr(b bool) *bool { return &b }

// sampleCatalog is the fixed fallback catalog served when no store is
// configured, the store errors, or the store returns an empty result.
// Ids are literal small integers as text and never collide with
// store-assigned ObjectID hex strings.
var sampleCatalog = []models.Product{
	{
		ID:            "1",
		Name:          "Classic Cotton T-Shirt",
		Description:   "Soft breathable cotton tee with a relaxed fit for everyday wear.",
		Price:         24.99,
		OriginalPrice: 34.99,
		Image:         "https://images.example.com/products/classic-cotton-tshirt.jpg",
		Category:      "t-shirts",
		Gender:        models.GenderUnisex,
		Rating:        4.5,
		Reviews:       128,
		InStock:       boolPtr(true),
		Quantity:      50,
		IsNew:         true,
		Sizes:         []string{"S", "M", "L", "XL"},
		Colors:        []string{"white", "black", "navy"},
		Features:      []string{"100% cotton", "Pre-shrunk", "Machine washable"},
		CreatedAt:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "2",
		Name:        "Slim Fit Denim Jeans",
		Description: "Stretch denim with a modern slim cut and five-pocket styling.",
		Price:       59.99,
		Image:       "https://images.example.com/products/slim-fit-jeans.jpg",
		Category:    "jeans",
		Gender:      models.GenderMen,
		Rating:      4.2,
		Reviews:     86,
		InStock:     boolPtr(true),
		Quantity:    32,
		IsHot:       true,
		Sizes:       []string{"30", "32", "34", "36"},
		Colors:      []string{"indigo", "black"},
		Features:    []string{"2% elastane stretch", "Zip fly"},
		CreatedAt:   time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:            "3",
		Name:          "Floral Summer Dress",
		Description:   "Lightweight midi dress with an all-over floral print.",
		Price:         44.99,
		OriginalPrice: 64.99,
		Image:         "https://images.example.com/products/floral-summer-dress.jpg",
		Category:      "dresses",
		Gender:        models.GenderWomen,
		Rating:        4.8,
		Reviews:       214,
		InStock:       boolPtr(true),
		Quantity:      18,
		IsNew:         true,
		IsHot:         true,
		Sizes:         []string{"XS", "S", "M", "L"},
		Colors:        []string{"blue floral", "red floral"},
		Features:      []string{"Viscose blend", "Side pockets"},
		CreatedAt:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "4",
		Name:        "Hooded Zip Sweatshirt",
		Description: "Midweight fleece hoodie with a full-length zip and kangaroo pockets.",
		Price:       39.99,
		Image:       "https://images.example.com/products/hooded-zip-sweatshirt.jpg",
		Category:    "hoodies",
		Gender:      models.GenderUnisex,
		Rating:      4.0,
		Reviews:     54,
		InStock:     boolPtr(true),
		Quantity:    40,
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"grey", "black", "forest"},
		Features:    []string{"Brushed fleece lining", "Ribbed cuffs"},
		CreatedAt:   time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:            "5",
		Name:          "Leather Ankle Boots",
		Description:   "Genuine leather boots with a low block heel and inside zip.",
		Price:         89.99,
		OriginalPrice: 119.99,
		Image:         "https://images.example.com/products/leather-ankle-boots.jpg",
		Category:      "shoes",
		Gender:        models.GenderWomen,
		Rating:        4.6,
		Reviews:       97,
		InStock:       boolPtr(true),
		Quantity:      12,
		IsHot:         true,
		Sizes:         []string{"36", "37", "38", "39", "40"},
		Colors:        []string{"tan", "black"},
		Features:      []string{"Genuine leather", "Rubber sole"},
		CreatedAt:     time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "6",
		Name:        "Canvas Weekender Bag",
		Description: "Durable canvas duffel with leather trim and a detachable strap.",
		Price:       64.99,
		Image:       "https://images.example.com/products/canvas-weekender-bag.jpg",
		Category:    "accessories",
		Gender:      models.GenderUnisex,
		Rating:      4.3,
		Reviews:     41,
		InStock:     boolPtr(true),
		Quantity:    25,
		Sizes:       []string{"One Size"},
		Colors:      []string{"olive", "sand"},
		Features:    []string{"Water-resistant canvas", "Interior zip pocket"},
		CreatedAt:   time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
	},
}

// SampleProducts returns a copy of the fallback catalog. Callers may reorder
// or trim the returned slice without affecting the fixed data.
func SampleProducts() []models.Product {
	out := make([]models.Product, len(sampleCatalog))
	copy(out, sampleCatalog)
	return out
}

// SeedProducts returns the built-in catalog used by the destructive reseed
// operation, with ids cleared so the store assigns fresh ones.
func SeedProducts() []models.Product {
	products := SampleProducts()
	now := time.Now().UTC()
	for i := range products {
		products[i].ID = ""
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
	}
	return products
}

// filterSamples applies the list query to the fallback catalog in-process,
// mirroring the store-side filtering.
func filterSamples(q repository.ProductQuery) []models.Product {
	products := SampleProducts()

	filtered := products[:0]
	for _, p := range products {
		if q.Category != "" && !containsFold(p.Category, q.Category) {
			continue
		}
		if q.Gender != "" && p.Gender != q.Gender {
			continue
		}
		if q.Search != "" && !containsFold(p.Name, q.Search) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortSamples(filtered, q.Sort)

	if q.Limit > 0 && int64(len(filtered)) > q.Limit {
		filtered = filtered[:q.Limit]
	}
	return filtered
}

func sortSamples(products []models.Product, by string) {
	switch by {
	case "price_asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price_desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "rating":
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Rating != products[j].Rating {
				return products[i].Rating > products[j].Rating
			}
			return products[i].Reviews > products[j].Reviews
		})
	default: // newest
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
