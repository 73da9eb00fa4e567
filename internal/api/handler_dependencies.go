package api

import (
	"github.com/wrenfield/carelog/internal/db"
	"github.com/wrenfield/carelog/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users, handler.repositories.CareLinks)
	handler.configService = services.NewConfigService(handler.repositories.Configs)
	handler.entryService = services.NewEntryService(handler.repositories.Entries, handler.repositories.Cycles)
	handler.bundleService = services.NewBundleService(
		handler.entryService,
		handler.repositories.Records,
		handler.repositories.Cycles,
		handler.repositories.Regimen,
		handler.repositories.SavedItems,
	)
	handler.summaryService = services.NewSummaryService(
		handler.repositories.Entries,
		handler.repositories.Records,
		handler.repositories.Cycles,
		handler.repositories.Regimen,
	)
	handler.cycleRangeService = services.NewCycleRangeService(
		handler.repositories.Entries,
		handler.repositories.Cycles,
		handler.repositories.Regimen,
	)
	handler.exportService = services.NewExportService(handler.summaryService, handler.cycleRangeService)
	return handler
}
