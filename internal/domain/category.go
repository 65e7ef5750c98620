package domain

type Subcategory struct {
	ID   string        `bson:"id" json:"id"`
	Name LocalizedText `bson:"name" json:"name"`
}

// Category owns its subcategories inline; they are not top-level entities.
type Category struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	Name          LocalizedText `bson:"name" json:"name"`
	Subcategories []Subcategory `bson:"subcategories,omitempty" json:"subcategories,omitempty"`
}
