package services

import (
	"fmt"

	"foodorders/internal/pkg/errs"
)

// Operation is a state-changing request on orders that has to pass validation first.
type Operation int

const (
	OperationUnknown Operation = iota
	OperationCreate
	OperationUpdate
	OperationDestroy
	OperationConfirm
	OperationSend
	OperationDeliver
)

func getOperationStrings() map[Operation]string {
	//nolint:exhaustive // OperationUnknown is intentionally excluded as it's invalid
	return map[Operation]string{
		OperationCreate:  "create",
		OperationUpdate:  "update",
		OperationDestroy: "destroy",
		OperationConfirm: "confirm",
		OperationSend:    "send",
		OperationDeliver: "deliver",
	}
}

// ParseOperation maps "create", "update", "destroy", "confirm", "send" or "deliver"
// to an Operation.
func ParseOperation(s string) (Operation, error) {
	for op, str := range getOperationStrings() {
		if str == s {
			return op, nil
		}
	}
	return OperationUnknown, errs.NewValueIsInvalidErrorWithCause(
		"operation is invalid",
		fmt.Errorf("%q is not a known operation", s),
	)
}

func (o Operation) String() string {
	if str, ok := getOperationStrings()[o]; ok {
		return str
	}
	return "unknown"
}

func (o Operation) Validate() error {
	if _, ok := getOperationStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"operation is invalid",
			fmt.Errorf("%d is not a known operation", o),
		)
	}
	return nil
}

// TargetsOrder reports whether the operation works on an existing order.
func (o Operation) TargetsOrder() bool {
	return o != OperationCreate && o != OperationUnknown
}

// ChecksCatalog reports whether the operation carries a product list.
func (o Operation) ChecksCatalog() bool {
	return o == OperationCreate || o == OperationUpdate
}
