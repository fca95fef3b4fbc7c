package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req createProductRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	cmd, err := commands.NewCreateProductCommand(actor, req.Name, price, req.Stock)
	if err != nil {
		return err
	}
	p, err := s.h.CreateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, newProductView(p), "product created")
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req createOrderRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, parseErr := kernel.UUIDFromString(item.ProductID)
		if parseErr != nil {
			return errs.NewValueIsInvalidErrorWithCause("productId", parseErr)
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(actor, req.ShippingAddress, lines)
	if err != nil {
		return err
	}
	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, newOrderView(o), "order placed")
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return err
	}
	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, newOrderView(o), "")
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req updateOrderStatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		actor, orderID, req.Status, req.Notes, req.TrackingNumber, req.EstimatedDelivery,
	)
	if err != nil {
		return err
	}
	o, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, newOrderView(o), "order status updated")
}

// CancelOrderItem handles PUT /api/v1/orders/:id/items/:itemId/cancel.
func (s *Server) CancelOrderItem(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderItemCommand(actor, orderID, itemID)
	if err != nil {
		return err
	}
	o, err := s.h.CancelOrderItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, newOrderView(o), "order item cancelled")
}

// UpdatePaymentStatus handles PUT /api/v1/orders/:id/payment-status.
func (s *Server) UpdatePaymentStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req updatePaymentStatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(actor, orderID, req.Status)
	if err != nil {
		return err
	}
	o, err := s.h.UpdatePaymentStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, newOrderView(o), "payment status updated")
}
