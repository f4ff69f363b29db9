package jobs

import (
	"context"
	"time"

	"rentline-backend/internal/logger"
	"rentline-backend/internal/utils"
)

// MarkOverdueRentals marks rentals as OVERDUE when their committed end date
// has passed without a return.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx := context.Background()

		query := `
			UPDATE rentals
			SET status = 'OVERDUE',
			    updated_on = NOW()
			WHERE status IN ('ACTIVE', 'EXTENDED')
			  AND current_end_date < $1
			RETURNING id, customer_id, current_end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format(utils.DateLayout))
		if err != nil {
			logger.Error("Failed to mark overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id         int32
				customerID int32
				endDate    time.Time
			)
			if err := rows.Scan(&id, &customerID, &endDate); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				continue
			}
			count++
			logger.Debug("Marked rental as overdue",
				"rental_id", id,
				"customer_id", customerID,
				"end_date", utils.FormatDate(endDate))
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("Marked rentals as overdue", "count", count)
	})
}

// SendReturnReminders emails customers whose rentals are due back tomorrow.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		tomorrow := utils.AddDays(utils.NormalizeDate(time.Now().UTC()), 1)

		rentals, err := jr.store.RentalRepository.ListEndingOn(ctx, tomorrow)
		if err != nil {
			logger.Error("Failed to list rentals ending tomorrow", "error", err)
			return
		}

		sent := 0
		for i := range rentals {
			r := &rentals[i]
			customer, err := jr.store.UserRepository.GetByID(ctx, r.CustomerID)
			if err != nil {
				logger.Error("Failed to load customer for reminder", "rental_id", r.ID, "error", err)
				continue
			}
			if err := jr.emailSvc.SendReturnReminder(ctx, customer.Email, customer.Name, r.ID, r.CurrentEndDate); err != nil {
				logger.Error("Failed to send return reminder", "rental_id", r.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent return reminders", "due", len(rentals), "sent", sent)
	})
}
