package domain

import "time"

type OrderStatus string

const (
	OrderStatusRequested OrderStatus = "requested"
	OrderStatusProcess   OrderStatus = "process"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type ContactChannel string

const (
	ContactWhatsApp ContactChannel = "whatsapp"
	ContactTelegram ContactChannel = "telegram"
)

// Contact is how the operator reaches the customer for manual fulfilment.
type Contact struct {
	Channel ContactChannel `bson:"channel" json:"channel"`
	Value   string         `bson:"value" json:"value"`
	Name    string         `bson:"name,omitempty" json:"name,omitempty"`
}

// OrderItem is a line item captured at order time. Product name and prices
// are denormalized so the order stays readable after catalog edits.
type OrderItem struct {
	ProductID     string        `bson:"productId" json:"productId"`
	ProductName   LocalizedText `bson:"productName" json:"productName"`
	Quantity      int           `bson:"quantity" json:"quantity"`
	Price         float64       `bson:"price" json:"price"`
	OriginalPrice float64       `bson:"originalPrice" json:"originalPrice"`
}

type Order struct {
	ID        string      `bson:"_id,omitempty" json:"id"`
	UserID    string      `bson:"userId" json:"userId"`
	Items     []OrderItem `bson:"items" json:"items"`
	Contact   Contact     `bson:"contact" json:"contact"`
	Total     float64     `bson:"total" json:"total"`
	Status    OrderStatus `bson:"status" json:"status"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusRequested: {OrderStatusProcess, OrderStatusCancelled},
	OrderStatusProcess:   {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the edge s -> next exists in the
// lifecycle graph.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (c ContactChannel) Valid() bool {
	return c == ContactWhatsApp || c == ContactTelegram
}

// ItemsTotal is the sum of effective line prices times quantities.
func (o Order) ItemsTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
