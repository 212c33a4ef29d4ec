package model

import "time"

// OrderStatus is the lifecycle state of a placed order. The storefront is
// Spanish-facing, so statuses keep their original labels.
type OrderStatus string

const (
	OrderCompleted OrderStatus = "Completado"
	OrderPending   OrderStatus = "Pendiente"
	OrderCancelled OrderStatus = "Cancelado"
)

// DeliveryMethod selects how an order reaches the customer.
type DeliveryMethod string

const (
	DeliveryPickup   DeliveryMethod = "pickup"
	DeliveryShipping DeliveryMethod = "shipping"
	DeliveryExpress  DeliveryMethod = "express"
)

// Delivery captures the fulfilment choice made at checkout.
type Delivery struct {
	Method  DeliveryMethod `json:"method" validate:"oneof=pickup shipping express"`
	Address string         `json:"address,omitempty"`
	StoreID string         `json:"storeId,omitempty"`
}

// Order is an immutable record created at placement time. Items hold a
// snapshot copy of the cart; Total is computed once and frozen.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId,omitempty"`
	CustomerName  string      `json:"customerName"`
	Date          time.Time   `json:"date"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	Items         []CartItem  `json:"items"`
	Delivery      Delivery    `json:"delivery"`
	PaymentMethod string      `json:"paymentMethod"`
}
