package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wrenfield/carelog/internal/models"
)

const dayParamLayout = "2006-01-02"

const maxRangeDays = 366

var errInvalidRange = errors.New("invalid range")

func (handler *Handler) parseDayParam(c *fiber.Ctx) (time.Time, error) {
	raw := strings.TrimSpace(c.Params("date"))
	day, err := time.ParseInLocation(dayParamLayout, raw, handler.location)
	if err != nil {
		return time.Time{}, errors.New("invalid date")
	}
	return day, nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}

// parseRangeQuery reads the from/to query parameters. When both are
// absent the range defaults to the trailing window ending today; a lone
// from or to anchors the window at that end.
func (handler *Handler) parseRangeQuery(c *fiber.Ctx, windowDays int) (time.Time, time.Time, error) {
	if windowDays <= 0 {
		windowDays = models.DefaultTrackingWindowDays
	}

	fromRaw := strings.TrimSpace(c.Query("from"))
	toRaw := strings.TrimSpace(c.Query("to"))

	var from, to time.Time
	var err error
	switch {
	case fromRaw != "" && toRaw != "":
		if from, err = time.ParseInLocation(dayParamLayout, fromRaw, handler.location); err != nil {
			return time.Time{}, time.Time{}, errInvalidRange
		}
		if to, err = time.ParseInLocation(dayParamLayout, toRaw, handler.location); err != nil {
			return time.Time{}, time.Time{}, errInvalidRange
		}
	case fromRaw != "":
		if from, err = time.ParseInLocation(dayParamLayout, fromRaw, handler.location); err != nil {
			return time.Time{}, time.Time{}, errInvalidRange
		}
		to = from.AddDate(0, 0, windowDays-1)
	case toRaw != "":
		if to, err = time.ParseInLocation(dayParamLayout, toRaw, handler.location); err != nil {
			return time.Time{}, time.Time{}, errInvalidRange
		}
		from = to.AddDate(0, 0, -(windowDays - 1))
	default:
		to = time.Now().In(handler.location)
		from = to.AddDate(0, 0, -(windowDays - 1))
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, errInvalidRange
	}
	if to.Sub(from) > time.Duration(maxRangeDays)*24*time.Hour {
		return time.Time{}, time.Time{}, errInvalidRange
	}
	return from, to, nil
}

func isValidScore(value int) bool {
	return value >= 0 && value <= 10
}

func isValidBristolScale(value int) bool {
	return value >= 1 && value <= 7
}

func isValidVitalType(value string) bool {
	switch value {
	case models.VitalBloodGlucose, models.VitalBloodPressure, models.VitalEarlyAMTemp, models.VitalPMTemp, models.VitalWeight:
		return true
	}
	return false
}

func isValidBleedingQuantity(value string) bool {
	switch value {
	case "", models.BleedingNone, models.BleedingSpotting, models.BleedingLight, models.BleedingMedium, models.BleedingHeavy:
		return true
	}
	return false
}
