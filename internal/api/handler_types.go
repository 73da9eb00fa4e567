package api

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/wrenfield/carelog/internal/db"
	"github.com/wrenfield/carelog/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	logger       zerolog.Logger

	repositories      *db.Repositories
	authService       *services.AuthService
	entryService      *services.EntryService
	bundleService     *services.BundleService
	summaryService    *services.SummaryService
	cycleRangeService *services.CycleRangeService
	exportService     *services.ExportService
	configService     *services.ConfigService
}

const defaultAuthTokenTTL = 7 * 24 * time.Hour

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool, logger zerolog.Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
	return handler.withDependencies(database)
}
