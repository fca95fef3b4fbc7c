package complaint

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const maxTitleLength = 200

var ErrComplaintIsNotConstructed = errors.New("Complaint must be created via NewComplaint constructor")

// Complaint is raised by a user, optionally about one order, and worked through the
// complaint status table by admins.
//
// Resolution metadata is stamped the first time the complaint enters RESOLVED,
// REJECTED or CLOSED. Later settlements keep the original stamp unless the
// complaint was REOPENED in between.
type Complaint struct {
	id            kernel.UUID
	userID        kernel.UUID
	orderID       *kernel.UUID
	complaintType Type
	title         string
	description   string
	status        Status
	attachments   []string

	resolvedByID    *kernel.UUID
	resolvedAt      *time.Time
	resolutionNotes string
	reopened        bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

func NewComplaint(
	id, userID kernel.UUID,
	orderID *kernel.UUID,
	complaintType Type,
	title, description string,
	attachments []string,
	now time.Time,
) (*Complaint, error) {
	c := &Complaint{
		status:        Open,
		attachments:   append([]string(nil), attachments...),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	var orderErr error
	if orderID != nil {
		orderErr = orderID.Validate()
	}

	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		orderErr,
		complaintType.Validate(),
		c.setTitle(title),
		c.setDescription(description),
	); err != nil {
		return nil, err
	}

	c.id = id
	c.userID = userID
	c.orderID = orderID
	c.complaintType = complaintType
	return c, nil
}

type Snapshot struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	OrderID         *kernel.UUID
	Type            Type
	Title           string
	Description     string
	Status          Status
	Attachments     []string
	ResolvedByID    *kernel.UUID
	ResolvedAt      *time.Time
	ResolutionNotes string
	Reopened        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Restore(s Snapshot) (*Complaint, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.UserID.Validate(),
		s.Type.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Complaint{
		id:              s.ID,
		userID:          s.UserID,
		orderID:         s.OrderID,
		complaintType:   s.Type,
		title:           s.Title,
		description:     s.Description,
		status:          s.Status,
		attachments:     s.Attachments,
		resolvedByID:    s.ResolvedByID,
		resolvedAt:      s.ResolvedAt,
		resolutionNotes: s.ResolutionNotes,
		reopened:        s.Reopened,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		isConstructed:   true,
	}, nil
}

func (c *Complaint) Snapshot() Snapshot {
	return Snapshot{
		ID:              c.id,
		UserID:          c.userID,
		OrderID:         c.orderID,
		Type:            c.complaintType,
		Title:           c.title,
		Description:     c.description,
		Status:          c.status,
		Attachments:     c.attachments,
		ResolvedByID:    c.resolvedByID,
		ResolvedAt:      c.resolvedAt,
		ResolutionNotes: c.resolutionNotes,
		Reopened:        c.reopened,
		CreatedAt:       c.createdAt,
		UpdatedAt:       c.updatedAt,
	}
}

func (c *Complaint) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComplaintIsNotConstructed
	}
	return nil
}

func (c *Complaint) ID() kernel.UUID            { return c.id }
func (c *Complaint) UserID() kernel.UUID        { return c.userID }
func (c *Complaint) OrderID() *kernel.UUID      { return c.orderID }
func (c *Complaint) Type() Type                 { return c.complaintType }
func (c *Complaint) Title() string              { return c.title }
func (c *Complaint) Description() string        { return c.description }
func (c *Complaint) Status() Status             { return c.status }
func (c *Complaint) Attachments() []string      { return c.attachments }
func (c *Complaint) ResolvedByID() *kernel.UUID { return c.resolvedByID }
func (c *Complaint) ResolvedAt() *time.Time     { return c.resolvedAt }
func (c *Complaint) ResolutionNotes() string    { return c.resolutionNotes }
func (c *Complaint) CreatedAt() time.Time       { return c.createdAt }
func (c *Complaint) UpdatedAt() time.Time       { return c.updatedAt }

// ChangeStatus applies next for resolver. On error nothing changes.
func (c *Complaint) ChangeStatus(resolverID kernel.UUID, next Status, resolutionNotes string, now time.Time) error {
	newStatus, err := c.status.TransitionTo(next)
	if err != nil {
		return err
	}

	switch {
	case newStatus == Reopened:
		c.reopened = true
	case newStatus.closesCase() && (c.resolvedAt == nil || c.reopened):
		c.resolvedByID = &resolverID
		c.resolvedAt = &now
		c.resolutionNotes = strings.TrimSpace(resolutionNotes)
		c.reopened = false
	}

	c.status = newStatus
	c.updatedAt = now
	return nil
}

func (c *Complaint) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if n := utf8.RuneCountInString(title); n > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", n, 1, maxTitleLength)
	}
	c.title = title
	return nil
}

func (c *Complaint) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}
