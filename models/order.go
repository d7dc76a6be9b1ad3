package models

import "time"

// Order status values.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment status values.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// CustomerInfo is the shipping contact embedded in an order.
type CustomerInfo struct {
	Name    string `json:"name" bson:"name" validate:"required"`
	Email   string `json:"email" bson:"email" validate:"required,email"`
	Address string `json:"address" bson:"address" validate:"required"`
	Phone   string `json:"phone" bson:"phone" validate:"required"`
	City    string `json:"city" bson:"city" validate:"required"`
	Country string `json:"country" bson:"country" validate:"required"`
	ZipCode string `json:"zipCode" bson:"zipCode" validate:"required"`
}

// LineItem references a product by id and carries a denormalized snapshot of
// its display fields taken at order time. The snapshot is authoritative for
// the order: later product edits or deletions never rewrite it.
type LineItem struct {
	ProductID string  `json:"productId" bson:"productId" validate:"required"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Image     string  `json:"image" bson:"image"`
	Size      string  `json:"size,omitempty" bson:"size,omitempty"`
	Color     string  `json:"color,omitempty" bson:"color,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity" validate:"required,min=1"`

	// Product carries the live catalog document when the order is read
	// back, best effort. Not persisted.
	Product *Product `json:"product,omitempty" bson:"-"`
}

// Order is a purchase record.
type Order struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	OrderNumber   string       `json:"orderNumber" bson:"orderNumber"`
	CustomerInfo  CustomerInfo `json:"customerInfo" bson:"customerInfo" validate:"required"`
	Products      []LineItem   `json:"products" bson:"products" validate:"required,min=1,dive"`
	TotalAmount   float64      `json:"totalAmount" bson:"totalAmount" validate:"required,gt=0"`
	ShippingCost  float64      `json:"shippingCost" bson:"shippingCost"`
	TaxAmount     float64      `json:"taxAmount" bson:"taxAmount"`
	Status        string       `json:"status" bson:"status" validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	PaymentStatus string       `json:"paymentStatus" bson:"paymentStatus" validate:"omitempty,oneof=pending paid failed refunded"`
	CreatedAt     time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDefaults fills the documented default values on a new order.
func (o *Order) ApplyDefaults(now time.Time) {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentStatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
}
