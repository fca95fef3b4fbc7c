package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/attachment"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockAttachmentRepository struct{ mock.Mock }

func (m *MockAttachmentRepository) Add(ctx context.Context, a *attachment.Attachment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAttachmentRepository) Update(ctx context.Context, a *attachment.Attachment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAttachmentRepository) Get(ctx context.Context, id kernel.UUID) (*attachment.Attachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attachment.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*attachment.Attachment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attachment.Attachment), args.Error(1)
}

// pendingOrder builds a one-line order of customerID sold by sellerID.
func pendingOrder(t *testing.T, customerID, sellerID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), sellerID, 1, decimal.RequireFromString("3.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, "1 Quay Road", []*order.Item{item}, decimal.Zero, time.Now().UTC())
	require.NoError(t, err)
	return o
}
