package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCollected PaymentStatus = "COLLECTED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

const (
	PaymentOptionPayNow   = "PAY_NOW"
	PaymentOptionOnReturn = "ON_RETURN"
)

type Payment struct {
	ID          int32         `json:"id"`
	RentalID    int32         `json:"rental_id"`
	CustomerID  int32         `json:"customer_id"`
	AmountCents int32         `json:"amount_cents"`
	Option      string        `json:"option"`
	Status      PaymentStatus `json:"status"`
	Description string        `json:"description"`
	CreatedOn   time.Time     `json:"created_on"`
}

// PaymentSummary backs the payment analytics view: collected vs pending
// totals over the selected window.
type PaymentSummary struct {
	TotalCollectedCents int64 `json:"total_collected_cents"`
	TotalPendingCents   int64 `json:"total_pending_cents"`
	TotalRefundedCents  int64 `json:"total_refunded_cents"`
	Count               int32 `json:"count"`
}
