// Package extension holds the rental extension core: the period/rate
// calculator, the booking-conflict resolver and the conflict-resolution
// dialog state machine. Everything here is pure computation over data the
// caller has already fetched; there is no I/O and no hidden state.
package extension

import (
	"fmt"
	"time"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/utils"
)

// Period count bounds. Requests outside the range are clamped rather than
// rejected to keep date math from running away on bad input.
const (
	MinPeriodCount = 1
	MaxPeriodCount = 52
)

// ClampPeriodCount bounds a requested period count to [1, 52].
func ClampPeriodCount(n int) int {
	if n < MinPeriodCount {
		return MinPeriodCount
	}
	if n > MaxPeriodCount {
		return MaxPeriodCount
	}
	return n
}

// ComputeExtension translates "periodCount periods of periodDays days
// starting the day after currentEndDate" into concrete calendar dates and a
// total charge for one rental line.
//
// The end-date convention is inclusive: a 1-day extension starting on day X
// ends on day X, not X+1. The charge is unitRateCents per period per unit.
func ComputeExtension(currentEndDate time.Time, periodCount, periodDays int, unitRateCents, quantity int32) (domain.ExtensionResult, error) {
	if periodDays <= 0 {
		return domain.ExtensionResult{}, fmt.Errorf("period days must be positive, got %d", periodDays)
	}
	if unitRateCents < 0 {
		return domain.ExtensionResult{}, fmt.Errorf("unit rate must not be negative, got %d", unitRateCents)
	}
	if quantity <= 0 {
		return domain.ExtensionResult{}, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	periodCount = ClampPeriodCount(periodCount)

	start := utils.AddDays(currentEndDate, 1)
	totalDays := periodCount * periodDays
	// Inclusive end: start counts as day one of the extension.
	end := utils.AddDays(start, totalDays-1)
	charge := unitRateCents * int32(periodCount) * quantity

	return domain.ExtensionResult{
		ExtensionStartDate: start,
		CalculatedEndDate:  end,
		TotalDays:          totalDays,
		ChargeCents:        charge,
	}, nil
}

// QuoteExtension aggregates ComputeExtension across a rental's lines for a
// single extension request. Every line is extended by the same number of
// periods; the quote's new end date is the latest per-line calculated end.
func QuoteExtension(rental *domain.Rental, req domain.ExtensionRequest) (*domain.ExtensionQuote, error) {
	if len(rental.Lines) == 0 {
		return nil, fmt.Errorf("rental %d has no lines to extend", rental.ID)
	}

	periodCount := ClampPeriodCount(req.PeriodCount)

	quote := &domain.ExtensionQuote{
		RentalID: rental.ID,
		Lines:    make([]domain.LineExtensionQuote, 0, len(rental.Lines)),
	}

	for _, ln := range rental.Lines {
		periodDays := req.EffectivePeriodDays()
		if periodDays <= 0 {
			// CUSTOM with no explicit length falls back to the line's own
			// pricing definition.
			periodDays = ln.PeriodDays
		}

		res, err := ComputeExtension(ln.CurrentEndDate, periodCount, periodDays, ln.UnitRateCents, ln.Quantity)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln.ID, err)
		}

		quote.Lines = append(quote.Lines, domain.LineExtensionQuote{LineID: ln.ID, Result: res})
		quote.TotalChargeCents += res.ChargeCents
		if res.TotalDays > quote.TotalDays {
			quote.TotalDays = res.TotalDays
		}
		if res.CalculatedEndDate.After(quote.NewEndDate) {
			quote.NewEndDate = res.CalculatedEndDate
		}
	}

	return quote, nil
}
