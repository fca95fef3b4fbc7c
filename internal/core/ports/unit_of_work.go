package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories obtained after
// Begin share its transaction; repositories obtained without an open transaction run
// on the plain connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active. Calling it after a
	// successful Commit is harmless.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ProductRepository() ProductRepository
	AttachmentRepository() AttachmentRepository
	ComplaintRepository() ComplaintRepository
	NotificationRepository() NotificationRepository
}
