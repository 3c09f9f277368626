package models

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique column already holds the value.
	ErrDuplicate = errors.New("already exists")

	// ErrReferenced is returned when deleting a record other rows still depend on.
	ErrReferenced = errors.New("still referenced")

	// ErrSlugConflict is returned when every freshly generated slug lost an insert race.
	ErrSlugConflict = errors.New("could not store a unique slug")
)

var (
	ErrCategoryNotFound        = fmt.Errorf("category %w", ErrNotFound)
	ErrProductNotFound         = fmt.Errorf("product %w", ErrNotFound)
	ErrPaymentMethodNotFound   = fmt.Errorf("payment method %w", ErrNotFound)
	ErrUserNotFound            = fmt.Errorf("user %w", ErrNotFound)
	ErrPurchaseOrderNotFound   = fmt.Errorf("purchase order %w", ErrNotFound)
	ErrPurchaseItemNotFound    = fmt.Errorf("purchase item %w", ErrNotFound)
	ErrPurchasePaymentNotFound = fmt.Errorf("purchase payment method %w", ErrNotFound)
)

// Postgres SQLSTATE codes reported by lib/pq.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// isDuplicateKey reports whether err is a unique constraint violation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// isForeignKeyViolation reports whether err is a foreign key constraint violation.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}

// notFound maps gorm's missing-record error onto the entity sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// duplicateField builds the validation error surfaced for a taken unique value.
func duplicateField(field, entity string) *ValidationError {
	return &ValidationError{
		Fields: map[string]string{field: fmt.Sprintf("%s with this %s already exists.", entity, field)},
		Err:    ErrDuplicate,
	}
}
