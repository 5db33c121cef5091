package services

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrNotFound reports that no record matches the requested identifier.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error { return &ValidationError{Message: msg} }

// ConflictError reports a request that would violate a uniqueness invariant,
// most importantly the one-to-one email/phone binding of guests.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func conflictErr(msg string) error { return &ConflictError{Message: msg} }

// isDuplicateKey reports whether err is a storage-level unique constraint
// violation. MySQL surfaces error 1062; sqlite reports a "UNIQUE constraint
// failed" message. The string fallback covers drivers GORM does not
// translate.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique constraint")
}
