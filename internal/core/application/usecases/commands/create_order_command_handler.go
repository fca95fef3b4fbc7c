package commands

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateOrderCommandHandler places an order: it reserves stock for every line, prices
// the lines from the catalog and stores the order as PENDING, all in one transaction.
// A line that cannot be reserved fails the whole checkout.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sink       ports.NotificationSink
	taxRate    decimal.Decimal
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sink ports.NotificationSink,
	taxRate decimal.Decimal,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		taxRate:    taxRate,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.Actor().Role != kernel.RoleCustomer {
		return nil, errs.NewForbiddenError("only customers place orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	lines := cmd.Lines()
	items := make([]*order.Item, len(lines))
	for _, i := range reservationOrder(lines) {
		line := lines[i]
		p, err := productRepo.Get(ctx, line.ProductID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause("productId", err)
		}
		if err != nil {
			return nil, err
		}

		if err = productRepo.ReserveStock(ctx, p.ID(), line.Quantity); err != nil {
			return nil, err
		}

		item, err := order.NewItem(kernel.NewUUID(), p.ID(), p.SellerID(), line.Quantity, p.Price())
		if err != nil {
			return nil, err
		}
		items[i] = item
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.Actor().ID, cmd.ShippingAddress(), items, h.taxRate, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.sink.Notify(ctx, o.SellerID(), notification.OrderPlaced, notification.Data{
		"orderId": o.ID().String(),
		"total":   o.Total().StringFixed(2),
	})

	return o, nil
}

// reservationOrder returns line indexes sorted by product id. Stock rows are locked in
// that order so two checkouts sharing products cannot deadlock; items keep cart order.
func reservationOrder(lines []OrderLine) []int {
	idx := make([]int, len(lines))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return strings.Compare(lines[a].ProductID.String(), lines[b].ProductID.String())
	})
	return idx
}
