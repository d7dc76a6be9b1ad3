package models

import "time"

// Gender values accepted on a product.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

// Product is a single catalog item.
type Product struct {
	ID            string   `json:"id" bson:"_id,omitempty"`
	Name          string   `json:"name" bson:"name" validate:"required"`
	Description   string   `json:"description" bson:"description" validate:"required"`
	Price         float64  `json:"price" bson:"price" validate:"required,gt=0"`
	OriginalPrice float64  `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Image         string   `json:"image" bson:"image" validate:"required"`
	Category      string   `json:"category" bson:"category" validate:"required"`
	Gender        string   `json:"gender" bson:"gender" validate:"omitempty,oneof=men women unisex"`
	Rating        float64  `json:"rating" bson:"rating"`
	Reviews       int      `json:"reviews" bson:"reviews"`
	InStock       *bool    `json:"inStock" bson:"inStock"`
	Quantity      int      `json:"quantity" bson:"quantity"`
	IsNew         bool     `json:"isNew" bson:"isNew"`
	IsHot         bool     `json:"isHot" bson:"isHot"`
	Sizes         []string `json:"sizes,omitempty" bson:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty" bson:"colors,omitempty"`
	Features      []string `json:"features,omitempty" bson:"features,omitempty"`

	// DiscountPercent is computed from OriginalPrice at read time for
	// display only. Never persisted.
	DiscountPercent int `json:"discountPercent,omitempty" bson:"-"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDefaults fills the documented default values on a new product.
func (p *Product) ApplyDefaults(now time.Time) {
	if p.Gender == "" {
		p.Gender = GenderUnisex
	}
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
