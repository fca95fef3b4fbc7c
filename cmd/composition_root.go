package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/filestorage"
	"marketplace/internal/adapters/out/metrics"
	"marketplace/internal/adapters/out/notifier"
	"marketplace/internal/adapters/out/persistence"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *persistence.GormUnitOfWorkFactory
	logger     *slog.Logger

	sink     ports.NotificationSink
	metrics  ports.Metrics
	proofs   ports.FileStorage
	evidence ports.FileStorage
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	reg prometheus.Registerer,
	logger *slog.Logger,
) (CompositionRoot, error) {
	proofs, err := filestorage.NewLocal(filepath.Join(cfg.UploadsDir, "proofs"))
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("proof storage: %w", err)
	}
	evidence, err := filestorage.NewLocal(filepath.Join(cfg.UploadsDir, "complaints"))
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("complaint storage: %w", err)
	}

	uowFactory := persistence.NewGormUnitOfWorkFactory(gormDB)

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		logger:     logger,
		// Notifications are written outside the business transaction.
		sink:     notifier.New(uowFactory.Create().NotificationRepository(), logger),
		metrics:  metrics.NewPrometheus(reg),
		proofs:   proofs,
		evidence: evidence,
	}, nil
}

// Handlers wires every use case the HTTP API exposes.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	return httpin.Handlers{
		CreateProduct: c.CreateCreateProductCommandHandler(),

		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		UpdateOrderStatus:   commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.sink, c.metrics),
		CancelOrderItem:     commands.NewCancelOrderItemCommandHandler(c.orderUoWFactory(), c.sink, c.metrics),
		UpdatePaymentStatus: commands.NewUpdatePaymentStatusCommandHandler(c.orderUoWFactory(), c.sink, c.metrics),

		AssignDelivery:        commands.NewAssignDeliveryCommandHandler(c.orderUoWFactory(), c.sink, c.metrics),
		UpdateDeliveryStatus:  commands.NewUpdateDeliveryStatusCommandHandler(c.orderUoWFactory(), c.sink, c.metrics),
		UploadProof:           commands.NewUploadProofCommandHandler(c.attachmentUoWFactory(), c.proofs, c.sink, c.logger),
		ListOrderAttachments:  c.CreateListOrderAttachmentsQueryHandler(),
		UpdateAttachmentNotes: commands.NewUpdateAttachmentNotesCommandHandler(c.attachmentUoWFactory()),

		CreateComplaint:       commands.NewCreateComplaintCommandHandler(c.complaintUoWFactory(), c.evidence, c.sink, c.logger),
		UpdateComplaintStatus: commands.NewUpdateComplaintStatusCommandHandler(c.complaintUoWFactory(), c.sink, c.metrics),

		ListNotifications:        queries.NewListNotificationsQueryHandler(c.gormDB),
		GetUnreadCount:           queries.NewGetUnreadCountQueryHandler(c.gormDB),
		MarkNotificationRead:     commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory()),
		MarkAllNotificationsRead: commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory()),
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.sink, c.cfg.TaxRate)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListOrderAttachmentsQueryHandler() queries.ListOrderAttachmentsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewListOrderAttachmentsQueryHandler(uow.OrderRepository(), uow.AttachmentRepository())
}

func (c *CompositionRoot) CreatePurgeNotificationsCommandHandler() commands.PurgeNotificationsCommandHandler {
	return commands.NewPurgeNotificationsCommandHandler(c.notificationUoWFactory())
}

// JobManager wires the scheduled jobs.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewNotificationRetentionJob(
			c.CreatePurgeNotificationsCommandHandler(),
			c.cfg.NotificationRetention,
			c.cfg.RetentionSchedule,
			c.logger,
		),
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) attachmentUoWFactory() commands.AttachmentUoWFactory {
	return FuncAttachmentUoWFactory(func() commands.AttachmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) complaintUoWFactory() commands.ComplaintUoWFactory {
	return FuncComplaintUoWFactory(func() commands.ComplaintUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAttachmentUoWFactory func() commands.AttachmentUoW

func (f FuncAttachmentUoWFactory) Create() commands.AttachmentUoW {
	return f()
}

type FuncComplaintUoWFactory func() commands.ComplaintUoW

func (f FuncComplaintUoWFactory) Create() commands.ComplaintUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
