package postgres

import (
	"strings"

	domainerrors "guildbook/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// translateWriteError maps constraint failures onto domain validation errors
// and wraps everything else as a database execution error.
func translateWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrap(domainerrors.ErrValidationFailed.WrapMessage("duplicate key"), details)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return errors.Wrap(domainerrors.ErrValidationFailed.WrapMessage(err.Error()), details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
