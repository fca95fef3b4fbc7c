package notification

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Data is the opaque payload attached to a notification, stored as a JSON object.
type Data map[string]any

type Notification struct {
	id               kernel.UUID
	userID           kernel.UUID
	notificationType Type
	title            string
	message          string
	data             Data
	isRead           bool
	readAt           *time.Time
	createdAt        time.Time

	isConstructed bool
}

// NewNotification renders the template of t for userID.
func NewNotification(id, userID kernel.UUID, t Type, data Data, now time.Time) (*Notification, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), t.Validate()); err != nil {
		return nil, err
	}
	title, message, err := Render(t, data)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = Data{}
	}

	return &Notification{
		id:               id,
		userID:           userID,
		notificationType: t,
		title:            title,
		message:          message,
		data:             data,
		createdAt:        now,
		isConstructed:    true,
	}, nil
}

func RestoreNotification(
	id, userID kernel.UUID,
	t Type,
	title, message string,
	data Data,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), t.Validate()); err != nil {
		return nil, err
	}
	return &Notification{
		id:               id,
		userID:           userID,
		notificationType: t,
		title:            title,
		message:          message,
		data:             data,
		isRead:           readAt != nil,
		readAt:           readAt,
		createdAt:        createdAt,
		isConstructed:    true,
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID      { return n.id }
func (n *Notification) UserID() kernel.UUID  { return n.userID }
func (n *Notification) Type() Type           { return n.notificationType }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Data() Data           { return n.data }
func (n *Notification) IsRead() bool         { return n.isRead }
func (n *Notification) ReadAt() *time.Time   { return n.readAt }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// MarkRead is idempotent: the first read time wins.
func (n *Notification) MarkRead(now time.Time) {
	if n.isRead {
		return
	}
	n.isRead = true
	n.readAt = &now
}
