package jobs

import (
	"context"
	"fmt"

	"rentable-backend/internal/logger"
	"rentable-backend/internal/utils"
)

// FinishElapsedReservations moves confirmed reservations whose end date is
// before today (UTC) to finished. The most-rented aggregate is dropped when
// anything changed.
func (jr *JobRunner) FinishElapsedReservations() {
	jr.runWithRecovery("FinishElapsedReservations", jr.finishElapsed)
}

func (jr *JobRunner) finishElapsed(ctx context.Context) error {
	today := utils.TruncateToDate(jr.now().UTC())
	n, err := jr.reservations.FinishElapsed(ctx, today)
	if err != nil {
		return fmt.Errorf("finish elapsed reservations: %w", err)
	}
	logger.Info("Finished elapsed reservations", "count", n, "asOf", utils.FormatDate(today))
	if n == 0 {
		return nil
	}
	if err := jr.aggregates.Invalidate(ctx); err != nil {
		logger.Warn("Failed to invalidate rental aggregates", "error", err)
	}
	return nil
}
