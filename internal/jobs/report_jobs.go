package jobs

import (
	"context"
	"time"

	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/utils"
)

// SendDailySalesReport mails yesterday's order count and revenue to the
// configured report address. Skips silently when no address is configured.
func (jr *JobRunner) SendDailySalesReport() {
	jr.runWithRecovery("SendDailySalesReport", func() {
		to := jr.config.Business.ReportEmail
		if to == "" {
			logger.Debug("no report email configured, skipping daily sales report")
			return
		}

		ctx := context.Background()
		today := time.Now().Format(utils.DateLayout)
		yesterday := time.Now().AddDate(0, 0, -1).Format(utils.DateLayout)

		count, total, err := jr.store.OrderRepository.SalesBetween(ctx, yesterday, today)
		if err != nil {
			logger.Error("failed to collect sales figures", "job", "SendDailySalesReport", "error", err)
			return
		}

		if err := jr.email.SendDailySalesReport(ctx, to, yesterday, count, total); err != nil {
			logger.Error("failed to send sales report", "job", "SendDailySalesReport", "error", err)
			return
		}

		logger.Info("daily sales report sent", "date", yesterday, "orders", count, "total", total)
	})
}
