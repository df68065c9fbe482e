package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking. They rely on GORM's
// TranslateError support being enabled on the connection.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	// The driver does not surface a typed error for this one, so fall back
	// to matching the PostgreSQL not_null_violation message and code.
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}
