package services_test

import (
	"testing"
	"time"

	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
	t2 = t1.Add(time.Hour)
)

func ptr[T any](v T) *T {
	return &v
}

func restaurant(t *testing.T, id int64) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.NewRestaurant(kernel.MustID(id), "Restaurant")
	require.NoError(t, err)
	return r
}

func product(t *testing.T, id, restaurantID int64, available bool) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.MustID(id), kernel.MustID(restaurantID), "Dish", available)
	require.NoError(t, err)
	return p
}

func restoredOrder(t *testing.T, id, restaurantID int64, startedAt, sentAt, deliveredAt *time.Time) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.MustID(1), 1)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.MustID(id), kernel.MustID(restaurantID),
		[]order.Line{line}, "", t0, startedAt, sentAt, deliveredAt)
	require.NoError(t, err)
	return o
}

func codesOf(violations []services.Violation) []services.Code {
	out := make([]services.Code, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Code)
	}
	return out
}

func validate(t *testing.T, snapshot services.Snapshot, req services.Request) services.Verdict {
	t.Helper()
	verdict, err := services.NewOrderValidator().Validate(snapshot, req)
	require.NoError(t, err)
	return verdict
}

func TestOrderValidator_Operations(t *testing.T) {
	t.Run("confirm a pending order", func(t *testing.T) {
		o := restoredOrder(t, 1, 5, nil, nil, nil)

		verdict := validate(t, services.NewSnapshot(o, nil, nil), services.Request{
			Operation: services.OperationConfirm,
			OrderID:   o.ID(),
		})

		assert.True(t, verdict.OK())
		require.NoError(t, verdict.Err())
	})

	t.Run("confirm a started order", func(t *testing.T) {
		o := restoredOrder(t, 1, 5, &t0, nil, nil)

		verdict := validate(t, services.NewSnapshot(o, nil, nil), services.Request{
			Operation: services.OperationConfirm,
			OrderID:   o.ID(),
		})

		require.False(t, verdict.OK())
		assert.Equal(t, []services.Violation{{Field: "startedAt", Code: services.CodeAlreadyStarted}}, verdict.Violations())
		assert.Equal(t, services.KindIllegalTransition, verdict.Violations()[0].Kind())
	})

	t.Run("create with a product of another restaurant", func(t *testing.T) {
		snapshot := services.NewSnapshot(nil, restaurant(t, 5), []*catalog.Product{product(t, 1, 7, true)})

		verdict := validate(t, snapshot, services.Request{
			Operation: services.OperationCreate,
			Payload: services.Payload{
				RestaurantID: ptr(int64(5)),
				Products:     []services.LineInput{{ProductID: 1, Quantity: 2}},
			},
		})

		require.Len(t, verdict.Violations(), 1)
		assert.Equal(t, services.CodeProductNotAvailableOrWrongRestaurant, verdict.Violations()[0].Code)
		assert.Equal(t, services.KindCatalogMismatch, verdict.Violations()[0].Kind())
	})

	t.Run("create with an empty product list", func(t *testing.T) {
		snapshot := services.NewSnapshot(nil, restaurant(t, 5), nil)

		verdict := validate(t, snapshot, services.Request{
			Operation: services.OperationCreate,
			Payload:   services.Payload{RestaurantID: ptr(int64(5)), Products: []services.LineInput{}},
		})

		assert.Equal(t, []services.Violation{{Field: "products", Code: services.CodeEmptyOrInvalidProductList}},
			verdict.Violations())
		assert.Equal(t, services.KindInvalidPayloadShape, verdict.Violations()[0].Kind())
	})

	t.Run("update changing the restaurant", func(t *testing.T) {
		o := restoredOrder(t, 1, 5, nil, nil, nil)
		snapshot := services.NewSnapshot(o, nil, []*catalog.Product{product(t, 1, 5, true)})

		verdict := validate(t, snapshot, services.Request{
			Operation: services.OperationUpdate,
			OrderID:   o.ID(),
			Payload: services.Payload{
				RestaurantID: ptr(int64(9)),
				Products:     []services.LineInput{{ProductID: 1, Quantity: 1}},
			},
		})

		assert.Equal(t, []services.Code{services.CodeRestaurantImmutable}, codesOf(verdict.Violations()))
		assert.Equal(t, services.KindImmutableField, verdict.Violations()[0].Kind())
		assert.Equal(t, "restaurantId", verdict.Violations()[0].Field)
	})

	t.Run("deliver a sent order, then deliver again", func(t *testing.T) {
		o := restoredOrder(t, 1, 5, &t0, &t1, nil)
		req := services.Request{Operation: services.OperationDeliver, OrderID: o.ID()}

		first := validate(t, services.NewSnapshot(o, nil, nil), req)
		require.True(t, first.OK())

		require.NoError(t, o.Deliver(t2))
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())

		second := validate(t, services.NewSnapshot(o, nil, nil), req)
		assert.Equal(t, []services.Violation{{Field: "deliveredAt", Code: services.CodeAlreadyDelivered}},
			second.Violations())
	})
}

func TestOrderValidator_Create(t *testing.T) {
	t.Run("valid create passes", func(t *testing.T) {
		snapshot := services.NewSnapshot(nil, restaurant(t, 5), []*catalog.Product{
			product(t, 1, 5, true),
			product(t, 2, 5, true),
		})

		verdict := validate(t, snapshot, services.Request{
			Operation: services.OperationCreate,
			Payload: services.Payload{
				RestaurantID: ptr(int64(5)),
				Products: []services.LineInput{
					{ProductID: 1, Quantity: 2, RestaurantID: ptr(int64(5))},
					{ProductID: 2, Quantity: 1, RestaurantID: ptr(int64(5))},
				},
			},
		})

		assert.True(t, verdict.OK())
		assert.Equal(t, services.OperationCreate, verdict.Operation())
	})

	t.Run("collects every violation in chain order", func(t *testing.T) {
		snapshot := services.NewSnapshot(nil, nil, []*catalog.Product{product(t, 1, 5, true)})

		verdict := validate(t, snapshot, services.Request{
			Operation: services.OperationCreate,
			Payload: services.Payload{
				RestaurantID: ptr(int64(5)),
				Products: []services.LineInput{
					{ProductID: 1, Quantity: 0, RestaurantID: ptr(int64(5))},
					{ProductID: 2, Quantity: 1, RestaurantID: ptr(int64(6))},
				},
			},
		})

		assert.Equal(t, []services.Violation{
			{Field: "restaurantId", Code: services.CodeRestaurantNotFound},
			{Field: "products", Code: services.CodeInvalidProductLine},
			{Field: "products", Code: services.CodeProductNotAvailableOrWrongRestaurant},
			{Field: "products[0].quantity", Code: services.CodeQuantityNotPositive},
			{Field: "products", Code: services.CodeMixedRestaurantProducts},
		}, verdict.Violations())

		var rejection *services.Rejection
		require.ErrorAs(t, verdict.Err(), &rejection)
		require.ErrorIs(t, verdict.Err(), services.ErrOrderRejected)
		assert.True(t, rejection.Has(services.CodeRestaurantNotFound))
		assert.False(t, rejection.Has(services.CodeOrderNotFound))
	})

	t.Run("missing restaurant id fails ownership and availability", func(t *testing.T) {
		snapshot := services.NewSnapshot(nil, nil, []*catalog.Product{product(t, 1, 5, true)})

		verdict := validate(t, snapshot, services.Request{
			Operation: services.OperationCreate,
			Payload:   services.Payload{Products: []services.LineInput{{ProductID: 1, Quantity: 1}}},
		})

		assert.Equal(t, []services.Code{
			services.CodeRestaurantNotFound,
			services.CodeProductNotAvailableOrWrongRestaurant,
		}, codesOf(verdict.Violations()))
	})

	t.Run("empty list only fails the shape check", func(t *testing.T) {
		snapshot := services.NewSnapshot(nil, restaurant(t, 5), nil)

		verdict := validate(t, snapshot, services.Request{
			Operation: services.OperationCreate,
			Payload:   services.Payload{RestaurantID: ptr(int64(5))},
		})

		assert.Equal(t, []services.Code{services.CodeEmptyOrInvalidProductList}, codesOf(verdict.Violations()))
	})
}

func TestOrderValidator_Update(t *testing.T) {
	lines := []services.LineInput{{ProductID: 1, Quantity: 3}}

	t.Run("absent or equal restaurant passes for a pending order", func(t *testing.T) {
		o := restoredOrder(t, 1, 5, nil, nil, nil)
		snapshot := services.NewSnapshot(o, nil, []*catalog.Product{product(t, 1, 5, true)})

		for _, rid := range []*int64{nil, ptr(int64(5))} {
			verdict := validate(t, snapshot, services.Request{
				Operation: services.OperationUpdate,
				OrderID:   o.ID(),
				Payload:   services.Payload{RestaurantID: rid, Products: lines},
			})
			assert.True(t, verdict.OK())
		}
	})

	t.Run("checks availability against the persisted restaurant", func(t *testing.T) {
		o := restoredOrder(t, 1, 5, nil, nil, nil)
		snapshot := services.NewSnapshot(o, nil, []*catalog.Product{product(t, 1, 7, true)})

		verdict := validate(t, snapshot, services.Request{
			Operation: services.OperationUpdate,
			OrderID:   o.ID(),
			Payload:   services.Payload{Products: lines},
		})

		assert.Equal(t, []services.Code{services.CodeProductNotAvailableOrWrongRestaurant}, codesOf(verdict.Violations()))
	})

	t.Run("started order cannot be updated", func(t *testing.T) {
		o := restoredOrder(t, 1, 5, &t0, nil, nil)
		snapshot := services.NewSnapshot(o, nil, []*catalog.Product{product(t, 1, 5, true)})

		verdict := validate(t, snapshot, services.Request{
			Operation: services.OperationUpdate,
			OrderID:   o.ID(),
			Payload:   services.Payload{Products: lines},
		})

		assert.Equal(t, []services.Violation{{Field: "startedAt", Code: services.CodeAlreadyStarted}}, verdict.Violations())
	})

	t.Run("missing order reports not found and a restaurant change", func(t *testing.T) {
		verdict := validate(t, services.NewSnapshot(nil, nil, nil), services.Request{
			Operation: services.OperationUpdate,
			OrderID:   kernel.MustID(404),
			Payload:   services.Payload{RestaurantID: ptr(int64(5)), Products: lines},
		})

		assert.Equal(t, []services.Violation{
			{Field: "id", Code: services.CodeOrderNotFound},
			{Field: "restaurantId", Code: services.CodeRestaurantImmutable},
		}, verdict.Violations())
	})

	t.Run("missing order without restaurant only reports not found and shape", func(t *testing.T) {
		verdict := validate(t, services.NewSnapshot(nil, nil, nil), services.Request{
			Operation: services.OperationUpdate,
			OrderID:   kernel.MustID(404),
		})

		assert.Equal(t, []services.Code{
			services.CodeOrderNotFound,
			services.CodeEmptyOrInvalidProductList,
		}, codesOf(verdict.Violations()))
	})
}

func TestOrderValidator_OrderTargeted(t *testing.T) {
	ops := []services.Operation{
		services.OperationDestroy,
		services.OperationConfirm,
		services.OperationSend,
		services.OperationDeliver,
	}

	t.Run("missing order is reported once", func(t *testing.T) {
		for _, op := range ops {
			verdict := validate(t, services.NewSnapshot(nil, nil, nil), services.Request{
				Operation: op,
				OrderID:   kernel.MustID(3),
			})

			assert.Equal(t, []services.Violation{{Field: "id", Code: services.CodeOrderNotFound}},
				verdict.Violations(), op.String())
			assert.Equal(t, services.KindNotFound, verdict.Violations()[0].Kind())
		}
	})

	t.Run("snapshot of another order counts as missing", func(t *testing.T) {
		o := restoredOrder(t, 1, 5, nil, nil, nil)

		verdict := validate(t, services.NewSnapshot(o, nil, nil), services.Request{
			Operation: services.OperationConfirm,
			OrderID:   kernel.MustID(2),
		})

		assert.Equal(t, []services.Code{services.CodeOrderNotFound}, codesOf(verdict.Violations()))
	})

	t.Run("destroy a started order", func(t *testing.T) {
		o := restoredOrder(t, 1, 5, &t0, nil, nil)

		verdict := validate(t, services.NewSnapshot(o, nil, nil), services.Request{
			Operation: services.OperationDestroy,
			OrderID:   o.ID(),
		})

		assert.Equal(t, []services.Violation{{Field: "id", Code: services.CodeAlreadyStarted}}, verdict.Violations())
	})
}

func TestOrderValidator_UnknownOperation(t *testing.T) {
	_, err := services.NewOrderValidator().Validate(services.NewSnapshot(nil, nil, nil), services.Request{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "operation is invalid")
}

func TestOrderValidator_Idempotent(t *testing.T) {
	o := restoredOrder(t, 1, 5, &t0, nil, nil)
	snapshot := services.NewSnapshot(o, restaurant(t, 5), []*catalog.Product{product(t, 1, 5, false)})
	validator := services.NewOrderValidator()

	for _, op := range []services.Operation{
		services.OperationCreate, services.OperationUpdate, services.OperationDestroy,
		services.OperationConfirm, services.OperationSend, services.OperationDeliver,
	} {
		req := services.Request{
			Operation: op,
			OrderID:   o.ID(),
			Payload: services.Payload{
				RestaurantID: ptr(int64(5)),
				Products:     []services.LineInput{{ProductID: 1, Quantity: 1}},
			},
		}

		first, err := validator.Validate(snapshot, req)
		require.NoError(t, err)
		second, err := validator.Validate(snapshot, req)
		require.NoError(t, err)

		assert.Equal(t, first.Violations(), second.Violations(), op.String())
	}
}
