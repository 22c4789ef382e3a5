package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // awaiting payment review
	OrderStatusProcess    OrderStatus = "process"    // accepted by seller, stock committed
	OrderStatusOnDelivery OrderStatus = "ondelivery" // handed to courier
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// ValidTransitions is the full lifecycle graph. Terminal states map to an
// empty set.
var ValidTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcess, OrderStatusCancelled},
	OrderStatusProcess:    {OrderStatusOnDelivery, OrderStatusCancelled},
	OrderStatusOnDelivery: {OrderStatusCompleted},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// ParseOrderStatus maps a wire value onto a known status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	_, ok := ValidTransitions[status]
	return status, ok
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range ValidTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ShippingRate is one cost entry of the carrier service chosen at checkout.
type ShippingRate struct {
	Value float64 `json:"value"`
	ETD   string  `json:"etd"`
	Note  string  `json:"note"`
}

// ShippingOption snapshots the chosen carrier service; it is never refreshed
// after checkout.
type ShippingOption struct {
	Service     string         `json:"service"`
	Description string         `json:"description"`
	Cost        []ShippingRate `json:"cost"`
}

type Order struct {
	ID                   uint           `gorm:"primaryKey" json:"_id"`
	OrderRef             string         `gorm:"uniqueIndex;not null" json:"orderRef"`
	UserID               uint           `gorm:"index;not null" json:"userId"`
	AddressID            uint           `gorm:"not null" json:"-"`
	Address              Address        `gorm:"foreignKey:AddressID" json:"addressId"`
	Items                []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice           float64        `gorm:"not null" json:"totalPrice"`
	ShippingCost         float64        `gorm:"not null;default:0" json:"shippingCost"`
	ShippingOption       ShippingOption `gorm:"serializer:json" json:"shippingOption"`
	SelectedShippingCode string         `json:"selectedShippingCode"`
	TrackingCode         string         `json:"trackingCode"`
	Status               OrderStatus    `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus        PaymentStatus  `gorm:"type:VARCHAR(10);default:'unpaid'" json:"paymentStatus"`
	PaymentProof         string         `json:"paymentProof"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// OrderItem is an immutable snapshot of a product selection at checkout time,
// not a live view of the cart.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"_id"`
	OrderID   uint    `gorm:"index;not null" json:"-"`
	ProductID uint    `gorm:"not null" json:"-"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}
