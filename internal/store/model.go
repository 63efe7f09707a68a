package store

import "time"

// Category classifies a catalog entry. The storefront only sells three
// kinds of hardware.
type Category string

const (
	CategoryLaptop Category = "laptop"
	CategoryPhone  Category = "phone"
	CategoryTablet Category = "tablet"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryLaptop, CategoryPhone, CategoryTablet:
		return true
	}
	return false
}

// OrderStatus is the admin-driven fulfillment state of an Order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipping   OrderStatus = "shipping"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipping, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "cod"
	PaymentBank PaymentMethod = "bank"
	PaymentCard PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCOD, PaymentBank, PaymentCard:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Product is a catalog entry.
// Prices are integers in the smallest currency unit (VND has no minor
// unit, so price == amount in dong).
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       int64    `json:"price"`
	// OriginalPrice is the pre-discount price shown struck through.
	// Zero means no discount badge. Not validated against Price.
	OriginalPrice int64    `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	Specs         []string `json:"specs"`
	Stock         int      `json:"stock"`
	Brand         string   `json:"brand"`
}

// CartLine is a snapshot of a Product at the moment it was added, plus a
// quantity. Later catalog edits never reach lines already in the cart.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Customer is the shipping/contact block captured at checkout.
// Email, District and Note are optional.
type Customer struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district,omitempty"`
	Note     string `json:"note,omitempty"`
}

// Order is an immutable record of a completed checkout. Only Status is
// ever rewritten after creation.
type Order struct {
	ID            int64         `json:"id"`
	Items         []CartLine    `json:"items"`
	Total         int64         `json:"total"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	Customer      Customer      `json:"customer"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}
