package services

import (
	"errors"
	"strings"
)

// ErrOrderRejected is matched by every *Rejection.
var ErrOrderRejected = errors.New("order operation rejected")

// Kind groups violation codes for callers that only need the category of a failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidPayloadShape
	KindInvalidLine
	KindCatalogMismatch
	KindMixedRestaurant
	KindIllegalTransition
	KindImmutableField
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidPayloadShape:
		return "InvalidPayloadShape"
	case KindInvalidLine:
		return "InvalidLine"
	case KindCatalogMismatch:
		return "CatalogMismatch"
	case KindMixedRestaurant:
		return "MixedRestaurant"
	case KindIllegalTransition:
		return "IllegalTransition"
	case KindImmutableField:
		return "ImmutableField"
	default:
		return "Unknown"
	}
}

// Code is the precise reason of a violation.
type Code string

const (
	CodeAlreadyStarted                       Code = "AlreadyStarted"
	CodeNotStarted                           Code = "NotStarted"
	CodeAlreadySent                          Code = "AlreadySent"
	CodeNotSent                              Code = "NotSent"
	CodeAlreadyDelivered                     Code = "AlreadyDelivered"
	CodeRestaurantNotFound                   Code = "RestaurantNotFound"
	CodeOrderNotFound                        Code = "OrderNotFound"
	CodeEmptyOrInvalidProductList            Code = "EmptyOrInvalidProductList"
	CodeInvalidProductLine                   Code = "InvalidProductLine"
	CodeQuantityNotPositive                  Code = "QuantityNotPositive"
	CodeProductNotAvailableOrWrongRestaurant Code = "ProductNotAvailableOrWrongRestaurant"
	CodeMixedRestaurantProducts              Code = "MixedRestaurantProducts"
	CodeRestaurantImmutable                  Code = "RestaurantImmutable"
)

type codeInfo struct {
	kind    Kind
	message string
}

var codes = map[Code]codeInfo{
	CodeAlreadyStarted:   {KindIllegalTransition, "The order has already been started"},
	CodeNotStarted:       {KindIllegalTransition, "The order is not started"},
	CodeAlreadySent:      {KindIllegalTransition, "The order has already been sent"},
	CodeNotSent:          {KindIllegalTransition, "The order is not sent"},
	CodeAlreadyDelivered: {KindIllegalTransition, "The order has already been delivered"},
	CodeRestaurantNotFound: {
		KindNotFound, "restaurantId does not correspond to an existing restaurant",
	},
	CodeOrderNotFound: {KindNotFound, "The order does not exist"},
	CodeEmptyOrInvalidProductList: {
		KindInvalidPayloadShape, "products is either an empty array or is not an array at all",
	},
	CodeInvalidProductLine: {
		KindInvalidLine, "products is not composed of objects with productId and quantity greater than 0",
	},
	CodeQuantityNotPositive: {KindInvalidLine, "quantity must be greater than 0"},
	CodeProductNotAvailableOrWrongRestaurant: {
		KindCatalogMismatch, "some or all products are not available or do not belong to the same restaurant",
	},
	CodeMixedRestaurantProducts: {KindMixedRestaurant, "all products must belong to the same restaurant"},
	CodeRestaurantImmutable:     {KindImmutableField, "You cannot change the restaurant"},
}

// Kind returns the category of the code.
func (c Code) Kind() Kind {
	return codes[c].kind
}

// Message returns the human readable text shown to clients.
func (c Code) Message() string {
	if info, ok := codes[c]; ok {
		return info.message
	}
	return string(c)
}

// Violation is one failed check, reported against the request field it concerns.
type Violation struct {
	Field string
	Code  Code
}

func violation(field string, code Code) Violation {
	return Violation{Field: field, Code: code}
}

func (v Violation) Kind() Kind {
	return v.Code.Kind()
}

func (v Violation) Message() string {
	return v.Code.Message()
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message()
}

// Rejection is the error form of a failed verdict. It lists every violation in chain order.
type Rejection struct {
	Operation  Operation
	Violations []Violation
}

func (r *Rejection) Error() string {
	parts := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		parts = append(parts, v.String())
	}
	return ErrOrderRejected.Error() + ": " + r.Operation.String() + ": " + strings.Join(parts, "; ")
}

func (r *Rejection) Unwrap() error {
	return ErrOrderRejected
}

// Has reports whether any violation carries the code.
func (r *Rejection) Has(code Code) bool {
	for _, v := range r.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

// Verdict is the outcome of validating one operation. The zero value is OK.
type Verdict struct {
	operation  Operation
	violations []Violation
}

func (v Verdict) Operation() Operation {
	return v.operation
}

// OK reports whether every check of the chain passed.
func (v Verdict) OK() bool {
	return len(v.violations) == 0
}

// Violations returns a copy of the collected violations in chain order.
func (v Verdict) Violations() []Violation {
	out := make([]Violation, len(v.violations))
	copy(out, v.violations)
	return out
}

// Err returns nil for an OK verdict and a *Rejection otherwise.
func (v Verdict) Err() error {
	if v.OK() {
		return nil
	}
	return &Rejection{Operation: v.operation, Violations: v.Violations()}
}
