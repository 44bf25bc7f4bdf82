package domain

import "time"

const (
	DeliveryPending   = "pending"
	DeliveryInTransit = "in_transit"
	DeliveryDelivered = "delivered"
)

func IsValidDeliveryStatus(s string) bool {
	return s == DeliveryPending || s == DeliveryInTransit || s == DeliveryDelivered
}

// Delivery is a single delivery-order record managed from the admin panel.
type Delivery struct {
	ID           int64
	Item         string
	CustomerName string
	Address      string
	Date         string
	Status       string
	CreatedAt    time.Time
}

// DeliveryStats is the dashboard aggregate over all deliveries.
type DeliveryStats struct {
	Pending   int
	InTransit int
	Delivered int
	Total     int
	// SuccessRate is delivered/total as a rounded percentage.
	SuccessRate int
	// AverageDeliveryTime is a fixed figure in days; per-delivery timing
	// is not recorded.
	AverageDeliveryTime float64
}
