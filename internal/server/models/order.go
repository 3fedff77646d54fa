package models

import (
	"fmt"
	"time"
)

// OrderStatus is the closed set of order lifecycle states.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

// ParseOrderStatus converts a stored or transmitted status string.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending:
		return OrderPending, nil
	case OrderShipped:
		return OrderShipped, nil
	case OrderDelivered:
		return OrderDelivered, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// OrderItem is one product line of an order.
type OrderItem struct {
	ProductID string
	Quantity  int
}

// Order groups items bought by a client. Items are inserted atomically with
// the order row and removed with it.
type Order struct {
	ID        string
	ClientID  string
	Status    OrderStatus
	OrderDate time.Time
	Items     []OrderItem
}

// OrderFilter narrows and paginates order listings. Zero values mean
// "no filter".
type OrderFilter struct {
	Status   OrderStatus
	ClientID string
	Limit    int
	Offset   int
}
