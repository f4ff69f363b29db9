package extension

import (
	"fmt"
	"time"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/utils"
)

// ProposeSolutions computes the non-destructive ways to proceed when some
// of a rental's items cannot be extended to requestedEndDate.
//
// Solutions are returned in presentation order: partial extension of the
// unconflicted lines first (when any exist), then a common safe date for
// all lines, then the manual escape hatch. When partial extension and the
// alternative date happen to select the same lines and date, both are still
// returned; the user picks.
//
// An empty conflict map is a caller error (the dialog never invokes the
// resolver in that case) and yields nil.
func ProposeSolutions(lines []domain.RentalLine, conflicts map[int32]domain.BookingConflict, requestedEndDate time.Time) []domain.ResolutionSolution {
	if len(conflicts) == 0 {
		return nil
	}

	requestedEndDate = utils.NormalizeDate(requestedEndDate)

	var solutions []domain.ResolutionSolution

	if s, ok := partialExtension(lines, conflicts, requestedEndDate); ok {
		solutions = append(solutions, s)
	}
	if s, ok := commonSafeDate(lines, conflicts, requestedEndDate); ok {
		solutions = append(solutions, s)
	}

	solutions = append(solutions, domain.ResolutionSolution{
		Type:        domain.SolutionTypeCustom,
		Description: "Set return dates per item manually",
	})

	return solutions
}

// partialExtension proposes extending only the lines whose items have no
// conflict, leaving conflicted lines untouched. Suppressed when every line
// is conflicted: an empty partial extension is a no-op, not a solution.
func partialExtension(lines []domain.RentalLine, conflicts map[int32]domain.BookingConflict, requestedEndDate time.Time) (domain.ResolutionSolution, bool) {
	var affected []int32
	var charge int32

	for _, ln := range lines {
		if _, conflicted := conflicts[ln.ItemID]; conflicted {
			continue
		}
		affected = append(affected, ln.ID)
		days := utils.DaysBetween(ln.CurrentEndDate, requestedEndDate)
		charge += lineCharge(ln, days)
	}

	if len(affected) == 0 {
		return domain.ResolutionSolution{}, false
	}

	end := requestedEndDate
	return domain.ResolutionSolution{
		Type: domain.SolutionTypePartialExtension,
		Description: fmt.Sprintf("Extend the %d item(s) without conflicts to %s",
			len(affected), utils.FormatDate(requestedEndDate)),
		AffectedLineIDs: affected,
		EndDate:         &end,
		ChargeCents:     charge,
	}, true
}

// commonSafeDate proposes the latest single date every line could be
// extended to without colliding with any known conflict: one day before the
// earliest limit reported across all conflicts. Omitted when no conflict
// carries a usable date, or when the candidate is the requested date itself.
func commonSafeDate(lines []domain.RentalLine, conflicts map[int32]domain.BookingConflict, requestedEndDate time.Time) (domain.ResolutionSolution, bool) {
	var limit time.Time
	found := false

	for _, c := range conflicts {
		d := c.EarliestConflictDate
		if c.MaxExtendableDate != nil {
			d = *c.MaxExtendableDate
		}
		if d.IsZero() {
			continue
		}
		if !found || d.Before(limit) {
			limit = d
			found = true
		}
	}

	if !found {
		return domain.ResolutionSolution{}, false
	}

	candidate := utils.AddDays(limit, -1)
	if candidate.Equal(requestedEndDate) {
		return domain.ResolutionSolution{}, false
	}

	affected := make([]int32, 0, len(lines))
	var charge int32
	for _, ln := range lines {
		affected = append(affected, ln.ID)
		days := utils.DaysBetween(ln.CurrentEndDate, candidate)
		if days < 0 {
			// Line already committed past the candidate; contributes nothing.
			days = 0
		}
		charge += lineCharge(ln, days)
	}

	return domain.ResolutionSolution{
		Type: domain.SolutionTypeAlternativeDate,
		Description: fmt.Sprintf("Extend all items to %s, the latest date available for every item",
			utils.FormatDate(candidate)),
		AffectedLineIDs: affected,
		EndDate:         &candidate,
		ChargeCents:     charge,
	}, true
}

// lineCharge prices days of additional occupancy for a line at its per-day
// equivalent of the per-period unit rate.
func lineCharge(ln domain.RentalLine, days int) int32 {
	return ln.UnitRateCents * ln.Quantity * int32(days)
}
