package order

import (
	"errors"
	"fmt"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product of an order with the ordered quantity.
// Lines are owned by their order and never shared.
type Line struct {
	productID kernel.ID
	quantity  int
	guard     guard.ConstructorGuard
}

// NewLine creates an order line. The product must be a valid identity and the quantity
// strictly positive.
func NewLine(productID kernel.ID, quantity int) (Line, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if err := errors.Join(productID.Validate(), quantityErr); err != nil {
		return Line{}, err
	}

	return Line{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l Line) ProductID() kernel.ID {
	return l.productID
}

func (l Line) Quantity() int {
	return l.quantity
}
