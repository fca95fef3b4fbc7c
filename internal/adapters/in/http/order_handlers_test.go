package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2, decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "1 Main St", []*order.Item{item},
		decimal.RequireFromString("0.10"), time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func getOrderFunc(inspect func(context.Context, queries.GetOrderQuery) error) Handler[queries.GetOrderQuery, *order.Order] {
	return handlerFunc[queries.GetOrderQuery, *order.Order](
		func(ctx context.Context, q queries.GetOrderQuery) (*order.Order, error) {
			if err := inspect(ctx, q); err != nil {
				return nil, err
			}
			item, _ := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1, decimal.NewFromInt(5))
			return order.NewOrder(q.OrderID(), q.Actor().ID, "1 Main St", []*order.Item{item}, decimal.Zero, time.Now())
		})
}

func TestGetOrder_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", errs.NewObjectNotFoundError("orderId", "x"), http.StatusNotFound, ""},
		{"forbidden", errs.NewForbiddenError("view this order"), http.StatusForbidden, ""},
		{"invalid transition", errs.NewInvalidTransitionError("order", "SHIPPED", "PENDING", []string{"DELIVERED"}), http.StatusBadRequest, ""},
		{"invalid value", errs.NewValueIsInvalidError("status"), http.StatusBadRequest, ""},
		{"database", errs.NewDatabaseError("load order", errors.New("conn reset")), http.StatusInternalServerError, "internal server error"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t, Handlers{
				GetOrder: getOrderFunc(func(context.Context, queries.GetOrderQuery) error { return tt.err }),
			})

			rec := doJSON(t, e, http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), bearer(t, newActor(kernel.RoleCustomer)), "")

			require.Equal(t, tt.status, rec.Code)
			var body envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, http.StatusText(tt.status), body.Error)
			if tt.message != "" {
				assert.Equal(t, tt.message, body.Message)
			} else {
				assert.Equal(t, tt.err.Error(), body.Message)
			}
		})
	}
}

func TestGetOrder_InvalidPathID(t *testing.T) {
	called := false
	e := newTestEcho(t, Handlers{
		GetOrder: getOrderFunc(func(context.Context, queries.GetOrderQuery) error {
			called = true
			return nil
		}),
	})

	rec := doJSON(t, e, http.MethodGet, "/api/v1/orders/not-a-uuid", bearer(t, newActor(kernel.RoleAdmin)), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestCreateOrder(t *testing.T) {
	customer := newActor(kernel.RoleCustomer)
	productID := kernel.NewUUID()

	var got commands.CreateOrderCommand
	e := newTestEcho(t, Handlers{
		CreateOrder: handlerFunc[commands.CreateOrderCommand, *order.Order](
			func(_ context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
				got = cmd
				return sampleOrder(t), nil
			}),
	})

	t.Run("created", func(t *testing.T) {
		body := `{"shippingAddress":"1 Main St","items":[{"productId":"` + productID.String() + `","quantity":2}]}`

		rec := doJSON(t, e, http.MethodPost, "/api/v1/orders", bearer(t, customer), body)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "1 Main St", got.ShippingAddress())
		require.Len(t, got.Lines(), 1)
		assert.True(t, productID.IsEqual(got.Lines()[0].ProductID))
		assert.Equal(t, 2, got.Lines()[0].Quantity)

		var resp struct {
			Success bool      `json:"success"`
			Data    orderView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "PENDING", resp.Data.Status)
		assert.Equal(t, "22", resp.Data.Total.String())
	})

	t.Run("validation", func(t *testing.T) {
		for name, body := range map[string]string{
			"no items":      `{"shippingAddress":"1 Main St","items":[]}`,
			"zero quantity": `{"shippingAddress":"1 Main St","items":[{"productId":"` + productID.String() + `","quantity":0}]}`,
			"bad product":   `{"shippingAddress":"1 Main St","items":[{"productId":"p1","quantity":1}]}`,
			"no address":    `{"items":[{"productId":"` + productID.String() + `","quantity":1}]}`,
			"malformed":     `{"shippingAddress":`,
		} {
			t.Run(name, func(t *testing.T) {
				rec := doJSON(t, e, http.MethodPost, "/api/v1/orders", bearer(t, customer), body)
				assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	seller := newActor(kernel.RoleSeller)
	orderID := kernel.NewUUID()

	var got commands.UpdateOrderStatusCommand
	e := newTestEcho(t, Handlers{
		UpdateOrderStatus: handlerFunc[commands.UpdateOrderStatusCommand, *order.Order](
			func(_ context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
				got = cmd
				return nil, errs.NewValueIsInvalidError("status")
			}),
	})

	rec := doJSON(t, e, http.MethodPut, "/api/v1/orders/"+orderID.String()+"/status", bearer(t, seller),
		`{"status":"shipped","trackingNumber":"TRK-1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, orderID.IsEqual(got.OrderID()))
	assert.Equal(t, order.Shipped, got.Status())

	rec = doJSON(t, e, http.MethodPut, "/api/v1/orders/"+orderID.String()+"/status", bearer(t, seller), `{"status":"teleported"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
