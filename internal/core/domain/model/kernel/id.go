package kernel

import (
	"fmt"
	"strconv"

	"foodorders/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating the zero value of ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// ID is the identity of an order, product or restaurant. Identities are assigned by the
// store and are always strictly positive; the zero value means "no reference".
//
// Example:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // 42
type ID struct {
	value int64
}

// NewID wraps a raw identity. Values less than 1 are rejected.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"id is invalid",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return ID{value: value}, nil
}

// ParseID parses the decimal form used in URLs and query strings.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id is invalid", err)
	}
	return NewID(v)
}

// MustID is NewID for literals in tests and fixtures. It panics on invalid input.
func MustID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Value returns the raw identity, 0 for the zero value.
func (i ID) Value() int64 {
	return i.value
}

// IsZero reports whether the ID is the zero value.
func (i ID) IsZero() bool {
	return i.value == 0
}

// IsEqual compares two identities.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// String returns the decimal representation.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
