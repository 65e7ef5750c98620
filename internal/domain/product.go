package domain

import "time"

type Product struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	Name          LocalizedText `bson:"name" json:"name"`
	Description   LocalizedText `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64       `bson:"price" json:"price"`
	DiscountPrice *float64      `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	CategoryID    string        `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	SubcategoryID string        `bson:"subcategoryId,omitempty" json:"subcategoryId,omitempty"`
	ImageURL      string        `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Active        bool          `bson:"active" json:"active"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
}

// EffectivePrice is the discount price when set, otherwise the list price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
