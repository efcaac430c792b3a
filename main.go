package main

import (
	"os"

	"github.com/username/affiliatereports/backend/src/config"
	"github.com/username/affiliatereports/backend/src/logger"
	"github.com/username/affiliatereports/backend/src/services"
)

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	logger.L.Info("Affiliate weekly reporting batch starting...")

	reportService := services.NewReportService(
		config.Cfg.AffiliateRatesPath,
		config.Cfg.CurrencyRatesPath,
		config.Cfg.OrdersPath,
		config.Cfg.ReportOutputDir,
		config.Cfg.StrictRateLookup,
	)

	summary, err := reportService.Run()
	if err != nil {
		logger.L.Error("Pipeline run failed", "error", err)
		os.Exit(1)
	}

	logger.L.Info("Pipeline run complete",
		"runID", summary.RunID,
		"ordersProcessed", summary.OrdersProcessed,
		"reportsWritten", len(summary.ReportsWritten),
		"affiliatesSkipped", len(summary.AffiliatesSkipped),
		"reportsFailed", len(summary.ReportsFailed))
}
