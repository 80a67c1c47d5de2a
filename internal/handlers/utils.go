package handlers

import (
	"errors"
	"strconv"
	"time"

	"finledger/internal/dto"
	"finledger/internal/models"
	"finledger/internal/services"

	"github.com/labstack/echo/v4"
)

// ErrInvalidID is returned when a path id parameter is not a positive integer
var ErrInvalidID = errors.New("invalid id parameter")

// timeNow is swapped out in tests to pin the reference instant
var timeNow = time.Now

// parseIDParam extracts a positive integer id from a path parameter
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// resolveFilter turns a validated filter query into a concrete date range
// and scope. An absent period behaves as custom, so an empty query means an
// unbounded, unscoped view.
func resolveFilter(query dto.FilterQuery) (models.DateRange, models.Scope, error) {
	period := models.Period(query.Period)
	if query.Period == "" {
		period = models.PeriodCustom
	}

	scope := models.Scope{
		CategoryID:    query.CategoryID,
		SubcategoryID: query.SubcategoryID,
	}
	if err := scope.Validate(); err != nil {
		return models.DateRange{}, models.Scope{}, err
	}

	dateRange := services.ResolveDateRange(period, timeNow(), query.From, query.To)
	return dateRange, scope, nil
}
