package domain

import "time"

type ItemStatus string

const (
	ItemStatusActive  ItemStatus = "ACTIVE"
	ItemStatusRetired ItemStatus = "RETIRED"
)

type Item struct {
	ID               int32      `json:"id"`
	SKU              string     `json:"sku"`
	Name             string     `json:"name"`
	Location         string     `json:"location"`
	QuantityOnHand   int32      `json:"quantity_on_hand"`
	QuantityReserved int32      `json:"quantity_reserved"`
	RentalRateCents  int32      `json:"rental_rate_cents"`
	PeriodDays       int        `json:"period_days"`
	Status           ItemStatus `json:"status"`
	CreatedOn        time.Time  `json:"created_on"`
	UpdatedOn        time.Time  `json:"updated_on"`
}

type StockMovementType string

const (
	StockMovementAdjustment StockMovementType = "ADJUSTMENT"
	StockMovementTransfer   StockMovementType = "TRANSFER"
)

// StockMovement records a manual stock-level change: a signed adjustment
// at one location, or a transfer of quantity between two locations.
type StockMovement struct {
	ID           int32             `json:"id"`
	ItemID       int32             `json:"item_id"`
	Type         StockMovementType `json:"type"`
	Quantity     int32             `json:"quantity"`
	FromLocation string            `json:"from_location,omitempty"`
	ToLocation   string            `json:"to_location,omitempty"`
	Reason       string            `json:"reason"`
	ActorID      int32             `json:"actor_id"`
	CreatedOn    time.Time         `json:"created_on"`
}
