package domain

import "time"

type RentalStatus string

const (
	RentalStatusDraft     RentalStatus = "DRAFT"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusExtended  RentalStatus = "EXTENDED"
	RentalStatusOverdue   RentalStatus = "OVERDUE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

type Rental struct {
	ID             int32        `json:"id"`
	CustomerID     int32        `json:"customer_id"`
	CustomerName   string       `json:"customer_name"`
	StartDate      time.Time    `json:"start_date"`
	CurrentEndDate time.Time    `json:"current_end_date"`
	Status         RentalStatus `json:"status"`
	Lines          []RentalLine `json:"lines"`
	TotalCostCents int32        `json:"total_cost_cents"`
	Notes          string       `json:"notes"`
	CreatedOn      time.Time    `json:"created_on"`
	UpdatedOn      time.Time    `json:"updated_on"`
}

// RentalLine is one row of a rental: a specific item, the quantity reserved
// and the line's own committed return date. Rate and period length are
// snapshots taken from the item at rental creation time; extension charges
// always use these snapshots, not live item prices.
type RentalLine struct {
	ID             int32     `json:"line_id"`
	RentalID       int32     `json:"rental_id"`
	ItemID         int32     `json:"item_id"`
	ItemName       string    `json:"item_name"`
	Quantity       int32     `json:"quantity"`
	UnitRateCents  int32     `json:"unit_rate_cents"`
	PeriodDays     int       `json:"period_days"`
	CurrentEndDate time.Time `json:"current_end_date"`
}

// RentalLineInput is one requested line in the rental-creation wizard.
// Rate and period length are snapshotted from the item when the rental is
// created.
type RentalLineInput struct {
	ItemID   int32 `json:"item_id"`
	Quantity int32 `json:"quantity"`
}

// LatestEndDate returns the latest committed end date across all lines,
// falling back to the rental-level end date when there are no lines.
func (r *Rental) LatestEndDate() time.Time {
	latest := r.CurrentEndDate
	for _, ln := range r.Lines {
		if ln.CurrentEndDate.After(latest) {
			latest = ln.CurrentEndDate
		}
	}
	return latest
}

// LineByID returns the line with the given id, or nil.
func (r *Rental) LineByID(lineID int32) *RentalLine {
	for i := range r.Lines {
		if r.Lines[i].ID == lineID {
			return &r.Lines[i]
		}
	}
	return nil
}
