// Package http exposes the order and catalog use cases over a REST API.
// Handlers translate request payloads into commands and queries, and map
// domain errors onto HTTP status codes: missing objects become 404, state
// conflicts such as insufficient stock become 409, and invalid input 400.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createInventoryHandler commands.CreateInventoryCommandHandler
	updateInventoryHandler commands.UpdateInventoryCommandHandler
	removeInventoryHandler commands.RemoveInventoryCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	editOrderHandler       commands.EditOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	completeOrderHandler   commands.CompleteOrderCommandHandler

	// Query handlers
	getAllInventoriesHandler queries.GetAllInventoriesQueryHandler
	getInventoryHandler      queries.GetInventoryQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createInventoryHandler commands.CreateInventoryCommandHandler,
	updateInventoryHandler commands.UpdateInventoryCommandHandler,
	removeInventoryHandler commands.RemoveInventoryCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getAllInventoriesHandler queries.GetAllInventoriesQueryHandler,
	getInventoryHandler queries.GetInventoryQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createInventoryHandler:   createInventoryHandler,
		updateInventoryHandler:   updateInventoryHandler,
		removeInventoryHandler:   removeInventoryHandler,
		createOrderHandler:       createOrderHandler,
		editOrderHandler:         editOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		completeOrderHandler:     completeOrderHandler,
		getAllInventoriesHandler: getAllInventoriesHandler,
		getInventoryHandler:      getInventoryHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderHandler:          getOrderHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/inventories", s.GetInventories)
	api.POST("/inventories", s.CreateInventory)
	api.GET("/inventories/:id", s.GetInventory)
	api.PUT("/inventories/:id", s.UpdateInventory)
	api.DELETE("/inventories/:id", s.RemoveInventory)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.CancelOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
}

// GetInventories handles GET /api/v1/inventories - lists the active catalog.
func (s *Server) GetInventories(ctx echo.Context) error {
	query := queries.NewGetAllInventoriesQuery()

	items, err := s.getAllInventoriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Inventory, len(items))
	for i, item := range items {
		response[i] = Inventory{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Quantity:    item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateInventory handles POST /api/v1/inventories - registers a catalog entry.
func (s *Server) CreateInventory(ctx echo.Context) error {
	var body NewInventory
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewPrice(body.Price)
	if err != nil {
		return badRequest(ctx, "Invalid inventory data: "+err.Error())
	}

	cmd, err := commands.NewCreateInventoryCommand(body.Name, body.Description, price, body.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid inventory data: "+err.Error())
	}

	id, err := s.createInventoryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id})
}

// GetInventory handles GET /api/v1/inventories/:id - fetches one catalog entry.
func (s *Server) GetInventory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid inventory ID")
	}

	query, err := queries.NewGetInventoryQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid inventory ID")
	}

	item, err := s.getInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Inventory{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Quantity:    item.Quantity,
	})
}

// UpdateInventory handles PUT /api/v1/inventories/:id - edits a catalog entry.
func (s *Server) UpdateInventory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid inventory ID")
	}

	var body InventoryUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var price *kernel.Price
	if body.Price != nil {
		p, priceErr := kernel.NewPrice(*body.Price)
		if priceErr != nil {
			return badRequest(ctx, "Invalid inventory data: "+priceErr.Error())
		}
		price = &p
	}

	cmd, err := commands.NewUpdateInventoryCommand(id, body.Name, body.Description, price, body.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid inventory data: "+err.Error())
	}

	if err = s.updateInventoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveInventory handles DELETE /api/v1/inventories/:id - soft-deletes a
// catalog entry. The row survives so historical orders keep resolving.
func (s *Server) RemoveInventory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid inventory ID")
	}

	cmd, err := commands.NewRemoveInventoryCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid inventory ID")
	}

	if err = s.removeInventoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - lists order summaries.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:        o.ID,
			Email:     o.Email,
			Date:      o.Date,
			Status:    o.Status,
			ItemCount: o.ItemCount,
			Total:     o.Total,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places an order, reserving
// stock for every requested item.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	email, err := kernel.NewEmail(body.Email)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	specs, err := buildItemSpecs(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	date := timeOrZero(body.Date)
	cmd, err := commands.NewCreateOrderCommand(email, date, specs)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id})
}

// GetOrder handles GET /api/v1/orders/:id - fetches one order with items.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItem{
			ID:          item.ID,
			InventoryID: item.InventoryID,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Inventory: OrderItemInventory{
				ID:          item.Inventory.ID,
				Name:        item.Inventory.Name,
				Description: item.Inventory.Description,
				Price:       item.Inventory.Price,
				Quantity:    item.Inventory.Quantity,
			},
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:     o.ID,
		Email:  o.Email,
		Date:   o.Date,
		Status: o.Status,
		Items:  items,
	})
}

// UpdateOrder handles PUT /api/v1/orders/:id - edits contact details and
// optionally replaces the reserved item set.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body OrderUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var email *kernel.Email
	if body.Email != nil {
		e, emailErr := kernel.NewEmail(*body.Email)
		if emailErr != nil {
			return badRequest(ctx, "Invalid order data: "+emailErr.Error())
		}
		email = &e
	}

	var specs []commands.ItemSpec
	if body.Items != nil {
		specs, err = buildItemSpecs(body.Items)
		if err != nil {
			return badRequest(ctx, "Invalid order data: "+err.Error())
		}
	}

	cmd, err := commands.NewEditOrderCommand(id, email, body.Date, specs)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.editOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles DELETE /api/v1/orders/:id - cancels an order and
// returns its reserved stock. Canceling twice is a conflict.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - marks a created
// order as fulfilled.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathID(ctx echo.Context) (uint64, error) {
	return strconv.ParseUint(ctx.Param("id"), 10, 64)
}

func buildItemSpecs(items []NewOrderItem) ([]commands.ItemSpec, error) {
	if items == nil {
		return nil, nil
	}

	specs := make([]commands.ItemSpec, 0, len(items))
	for _, item := range items {
		spec, err := commands.NewItemSpec(item.InventoryID, item.Quantity)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, inventory.ErrInventoryAlreadyDeleted),
		errors.Is(err, order.ErrOrderAlreadyCanceled),
		errors.Is(err, order.ErrOrderIsNotEditable):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
