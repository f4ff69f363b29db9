package domain

import "time"

type PeriodType string

const (
	PeriodTypeDay    PeriodType = "DAY"
	PeriodTypeWeek   PeriodType = "WEEK"
	PeriodTypeMonth  PeriodType = "MONTH"
	PeriodTypeCustom PeriodType = "CUSTOM"
)

// CanonicalDays returns the fixed period length for the built-in period
// types. CUSTOM has no canonical length and returns 0; the caller supplies
// its own value.
func (p PeriodType) CanonicalDays() int {
	switch p {
	case PeriodTypeDay:
		return 1
	case PeriodTypeWeek:
		return 7
	case PeriodTypeMonth:
		return 30
	default:
		return 0
	}
}

// ExtensionRequest describes how far a rental should be extended:
// PeriodCount periods of the length selected by PeriodType. PeriodDays is
// only consulted for CUSTOM periods.
type ExtensionRequest struct {
	PeriodCount int        `json:"period_count"`
	PeriodType  PeriodType `json:"period_type"`
	PeriodDays  int        `json:"period_days,omitempty"`
}

// EffectivePeriodDays resolves the period length in days. Built-in period
// types snap to their canonical length regardless of PeriodDays.
func (r ExtensionRequest) EffectivePeriodDays() int {
	if d := r.PeriodType.CanonicalDays(); d > 0 {
		return d
	}
	return r.PeriodDays
}

// ExtensionResult is the derived outcome of extending a single line. It is
// never persisted; it is recomputed whenever any input changes.
type ExtensionResult struct {
	ExtensionStartDate time.Time `json:"extension_start_date"`
	CalculatedEndDate  time.Time `json:"calculated_end_date"`
	TotalDays          int       `json:"total_days"`
	ChargeCents        int32     `json:"charge_cents"`
}

// ExtensionQuote aggregates per-line extension results for a whole rental.
type ExtensionQuote struct {
	RentalID         int32                `json:"rental_id"`
	NewEndDate       time.Time            `json:"new_end_date"`
	TotalDays        int                  `json:"total_days"`
	TotalChargeCents int32                `json:"total_charge_cents"`
	Lines            []LineExtensionQuote `json:"lines"`
}

type LineExtensionQuote struct {
	LineID int32           `json:"line_id"`
	Result ExtensionResult `json:"result"`
}

// ExtensionSubmission is the payload accepted by the extension endpoint.
// The field shapes mirror what the front-end sends.
type ExtensionSubmission struct {
	NewEndDate         string          `json:"new_end_date"`
	Items              []ExtensionItem `json:"items"`
	PaymentOption      string          `json:"payment_option"`
	PaymentAmountCents int32           `json:"payment_amount"`
	SessionID          string          `json:"session_id,omitempty"`
}

type ExtensionItem struct {
	LineID         int32  `json:"line_id"`
	Action         string `json:"action"`
	ExtendQuantity int32  `json:"extend_quantity"`
}

const ExtensionItemActionExtend = "EXTEND"

// AvailabilityResult is returned by the extension availability check.
// When Available is false, Conflicts is keyed by item id and Solutions
// holds the proposed resolutions in presentation order.
type AvailabilityResult struct {
	Available bool                      `json:"available"`
	SessionID string                    `json:"session_id"`
	Conflicts map[int32]BookingConflict `json:"conflicts,omitempty"`
	Solutions []ResolutionSolution      `json:"solutions,omitempty"`
}
