// Package http exposes the order use cases over a JSON API served by echo.
package http

import (
	"log/slog"
	"net/http"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests by delegating to the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	updateOrderHandler     commands.UpdateOrderCommandHandler
	destroyOrderHandler    commands.DestroyOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler
	validateOrderHandler queries.ValidateOrderQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	destroyOrderHandler commands.DestroyOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	validateOrderHandler queries.ValidateOrderQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		updateOrderHandler:     updateOrderHandler,
		destroyOrderHandler:    destroyOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		getOrderHandler:        getOrderHandler,
		listOrdersHandler:      listOrdersHandler,
		validateOrderHandler:   validateOrderHandler,
		logger:                 logger.With("component", "http"),
	}
}

// Register mounts the order API on e.
func (s *Server) Register(e *echo.Echo) {
	g := e.Group("/api/v1/orders")

	g.POST("", s.CreateOrder)
	g.GET("", s.ListOrders)
	g.POST("/validate", s.ValidateOrder)
	g.GET("/:orderId", s.GetOrder)
	g.PUT("/:orderId", s.UpdateOrder)
	g.DELETE("/:orderId", s.DestroyOrder)
	g.PATCH("/:orderId/confirm", s.transition(services.OperationConfirm))
	g.PATCH("/:orderId/send", s.transition(services.OperationSend))
	g.PATCH("/:orderId/deliver", s.transition(services.OperationDeliver))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	body, err := bindOrderBody(c)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), commands.NewCreateOrderCommand(body.payload()))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(created)))
}

// ListOrders handles GET /api/v1/orders?restaurantId=&status=.
func (s *Server) ListOrders(c echo.Context) error {
	var (
		restaurantID *kernel.ID
		status       *order.Status
	)

	if raw := c.QueryParam("restaurantId"); raw != "" {
		id, err := kernel.ParseID(raw)
		if err != nil {
			return s.fail(c, err)
		}
		restaurantID = &id
	}
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return s.fail(c, err)
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(restaurantID, status)
	if err != nil {
		return s.fail(c, err)
	}

	found, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Order, 0, len(found))
	for _, o := range found {
		response = append(response, toOrder(o))
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(c echo.Context) error {
	id, ok := orderID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, Rejected{Errors: toViolationItems(orderNotFound)})
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	found, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(found))
}

// UpdateOrder handles PUT /api/v1/orders/:orderId.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, ok := orderID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, Rejected{Errors: toViolationItems(orderNotFound)})
	}

	body, err := bindOrderBody(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, body.payload())
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.updateOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(updated)))
}

// DestroyOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) DestroyOrder(c echo.Context) error {
	id, ok := orderID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, Rejected{Errors: toViolationItems(orderNotFound)})
	}

	cmd, err := commands.NewDestroyOrderCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.destroyOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// transition handles PATCH /api/v1/orders/:orderId/{confirm,send,deliver}.
func (s *Server) transition(op services.Operation) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := orderID(c)
		if !ok {
			return c.JSON(http.StatusNotFound, Rejected{Errors: toViolationItems(orderNotFound)})
		}

		cmd, err := commands.NewTransitionOrderCommand(id, op)
		if err != nil {
			return s.fail(c, err)
		}

		changed, err := s.transitionOrderHandler.Handle(c.Request().Context(), cmd)
		if err != nil {
			return s.fail(c, err)
		}

		return c.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(changed)))
	}
}

// ValidateOrder handles POST /api/v1/orders/validate?operation=&orderId=. It answers
// whether the operation would be accepted now and changes nothing.
func (s *Server) ValidateOrder(c echo.Context) error {
	op, err := services.ParseOperation(c.QueryParam("operation"))
	if err != nil {
		return s.fail(c, err)
	}

	body, err := bindOrderBody(c)
	if err != nil {
		return s.fail(c, err)
	}

	// an unparsable id is left zero and reported by the engine as OrderNotFound
	id, _ := kernel.ParseID(c.QueryParam("orderId"))

	query, err := queries.NewValidateOrderQuery(services.Request{
		Operation: op,
		OrderID:   id,
		Payload:   body.payload(),
	})
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.validateOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Verdict{
		Valid:  result.Valid,
		Errors: toViolationItems(result.Violations),
	})
}

func bindOrderBody(c echo.Context) (orderBody, error) {
	var body orderBody
	if err := (&echo.DefaultBinder{}).BindBody(c, &body); err != nil {
		return orderBody{}, err
	}
	return body, nil
}

func orderID(c echo.Context) (kernel.ID, bool) {
	id, err := kernel.ParseID(c.Param("orderId"))
	if err != nil {
		return kernel.ID{}, false
	}
	return id, true
}
