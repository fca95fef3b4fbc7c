package commands_test

import (
	"context"
	"io"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/attachment"
	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
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

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockAttachmentRepository struct{ mock.Mock }

func (m *MockAttachmentRepository) Add(ctx context.Context, a *attachment.Attachment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAttachmentRepository) Update(ctx context.Context, a *attachment.Attachment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
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

type MockComplaintRepository struct{ mock.Mock }

func (m *MockComplaintRepository) Add(ctx context.Context, c *complaint.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockComplaintRepository) Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*complaint.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*complaint.Complaint), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID kernel.UUID, readAt time.Time) (int64, error) {
	args := m.Called(ctx, userID, readAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) AttachmentRepository() ports.AttachmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AttachmentRepository)
}

func (m *MockUoW) ComplaintRepository() ports.ComplaintRepository {
	args := m.Called()
	return args.Get(0).(ports.ComplaintRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type productUoWFactory struct{ uow *MockUoW }

func (f productUoWFactory) Create() commands.ProductUoW { return f.uow }

type attachmentUoWFactory struct{ uow *MockUoW }

func (f attachmentUoWFactory) Create() commands.AttachmentUoW { return f.uow }

type complaintUoWFactory struct{ uow *MockUoW }

func (f complaintUoWFactory) Create() commands.ComplaintUoW { return f.uow }

type notificationUoWFactory struct{ uow *MockUoW }

func (f notificationUoWFactory) Create() commands.NotificationUoW { return f.uow }

type MockSink struct{ mock.Mock }

func (m *MockSink) Notify(ctx context.Context, userID kernel.UUID, eventType notification.Type, data notification.Data) {
	m.Called(ctx, userID, eventType, data)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) StatusChanged(subject, from, to string) {
	m.Called(subject, from, to)
}

func (m *MockMetrics) OrderDelivered(total decimal.Decimal) {
	m.Called(total)
}

type MockStorage struct{ mock.Mock }

func (m *MockStorage) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	args := m.Called(ctx, name, r)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Remove(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

type cast struct {
	customer kernel.Actor
	seller   kernel.Actor
	courier  kernel.Actor
	admin    kernel.Actor
}

func newCast() cast {
	return cast{
		customer: kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleCustomer},
		seller:   kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleSeller},
		courier:  kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleDelivery},
		admin:    kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleAdmin},
	}
}

// orderFixture builds a two-line order (2 x 10.00, 3 x 5.50) owned by c.customer and
// sold by c.seller, forced into status and delivery. A non-pending delivery is
// assigned to c.courier.
func orderFixture(t *testing.T, c cast, status order.Status, delivery order.DeliveryStatus) *order.Order {
	t.Helper()

	first, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), c.seller.ID, 2, decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), c.seller.ID, 3, decimal.RequireFromString("5.50"))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), c.customer.ID, "12 Market Street",
		[]*order.Item{first, second}, decimal.RequireFromString("0.10"), time.Now().UTC())
	require.NoError(t, err)

	s := o.Snapshot()
	s.Status = status
	s.DeliveryStatus = delivery
	if delivery != order.DeliveryPending {
		courierID := c.courier.ID
		s.DeliveryPersonID = &courierID
	}
	o, err = order.Restore(s)
	require.NoError(t, err)
	return o
}
