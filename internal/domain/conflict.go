package domain

import "time"

// BookingConflict reports that an item cannot satisfy the requested
// extension window. An entry exists only when available quantity falls
// short of the quantity the rental line holds.
type BookingConflict struct {
	ItemID                   int32      `json:"item_id"`
	ItemName                 string     `json:"item_name"`
	ConflictingBookingsCount int        `json:"conflicting_bookings_count"`
	EarliestConflictDate     time.Time  `json:"earliest_conflict_date"`
	ConflictingCustomer      string     `json:"conflicting_customer"`
	MaxExtendableDate        *time.Time `json:"max_extendable_date,omitempty"`
	RequestedQuantity        int32      `json:"requested_quantity"`
	AvailableQuantity        int32      `json:"available_quantity"`
}

type SolutionType string

const (
	SolutionTypePartialExtension SolutionType = "PARTIAL_EXTENSION"
	SolutionTypeAlternativeDate  SolutionType = "ALTERNATIVE_DATE"
	SolutionTypeCustom           SolutionType = "CUSTOM"
)

// ResolutionSolution is one proposed way to proceed despite conflicts.
// CUSTOM carries no computed end date or charges; selecting it hands
// control back to the user for manual per-line date entry.
type ResolutionSolution struct {
	Type            SolutionType `json:"type"`
	Description     string       `json:"description"`
	AffectedLineIDs []int32      `json:"affected_line_ids,omitempty"`
	EndDate         *time.Time   `json:"end_date,omitempty"`
	ChargeCents     int32        `json:"charge_cents"`
}
