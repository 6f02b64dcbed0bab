package jobs

import (
	"context"
	"time"

	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/utils"
)

// RefreshRentalStatuses tags customers with an in-window rental as ACTIVE and
// closes out customers whose rentals have all ended. Runs nightly.
func (jr *JobRunner) RefreshRentalStatuses() {
	jr.runWithRecovery("RefreshRentalStatuses", func() {
		ctx := context.Background()
		today := time.Now().Format(utils.DateLayout)

		activated, err := jr.store.CustomerRepository.MarkActiveRenters(ctx, today)
		if err != nil {
			logger.Error("failed to mark active renters", "job", "RefreshRentalStatuses", "error", err)
			return
		}

		closed, err := jr.store.CustomerRepository.CloseFinishedRenters(ctx, today)
		if err != nil {
			logger.Error("failed to close finished renters", "job", "RefreshRentalStatuses", "error", err)
			return
		}

		logger.Info("rental statuses refreshed", "activated", activated, "closed", closed)
	})
}
