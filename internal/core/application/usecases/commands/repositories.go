// Package commands contains business operations that modify system state.
// Every handler validates its command, opens a unit of work, loads and locks what it
// changes, writes the aggregate and its side effects, commits, and only then reports
// metrics and notifications.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	AttachmentRepoFactory interface {
		AttachmentRepository() ports.AttachmentRepository
	}

	ComplaintRepoFactory interface {
		ComplaintRepository() ports.ComplaintRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// ProductUoW manages catalog-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderUoW covers order changes together with the stock they reserve or release.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   releases, err := o.ChangeStatus(order.Cancelled, now)
	//   for _, r := range releases {
	//       err = uow.ProductRepository().ReleaseStock(ctx, r.ProductID, r.Quantity)
	//   }
	//   err = uow.OrderRepository().Update(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AttachmentUoW covers proof uploads, which read the order they belong to.
	AttachmentUoW interface {
		TxManager
		OrderRepoFactory
		AttachmentRepoFactory
	}

	AttachmentUoWFactory interface {
		Create() AttachmentUoW
	}

	// ComplaintUoW covers complaints, which may reference an order.
	ComplaintUoW interface {
		TxManager
		OrderRepoFactory
		ComplaintRepoFactory
	}

	ComplaintUoWFactory interface {
		Create() ComplaintUoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
