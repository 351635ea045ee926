package service

import (
	"errors"

	"github.com/ptnguyen/quizhub/internal/apperror"
	"gorm.io/gorm"
)

// storageErr translates a repository failure into the error taxonomy: a
// missing record becomes NotFound with the given message, anything else is a
// retriable Unavailable.
func storageErr(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(notFoundMsg)
	}
	return apperror.Unavailable("storage unavailable", err)
}
