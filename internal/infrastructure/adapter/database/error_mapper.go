package database

import (
	"errors"

	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct {
	driver string
}

// NewErrorMapper creates a new ErrorMapper for the given driver
func NewErrorMapper(driver string) *ErrorMapper {
	return &ErrorMapper{driver: driver}
}

// MapError turns a missing row into ErrAccountNotFound and anything else into a StoreError
func (m *ErrorMapper) MapError(err error, operation string, userID int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}
	return errs.NewStoreError(m.driver, operation, userID, err)
}
