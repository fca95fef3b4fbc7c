package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// customerStatuses are the only targets a customer may request.
var customerStatuses = map[order.Status]bool{
	order.Cancelled:       true,
	order.ReturnRequested: true,
	order.Completed:       true,
}

// OrderPolicy decides what an actor may do with an order.
//
// Visibility:
//   - admins see every order
//   - customers see their own orders
//   - sellers see orders they own or that contain one of their lines
//   - delivery persons see orders assigned to them
//
// Status change permissions, checked after visibility and the transition table:
//   - customers may request CANCELLED (only while the order is PENDING),
//     RETURN_REQUESTED and COMPLETED
//   - sellers may request anything except RETURN_REQUESTED
//   - admins may request anything the table allows
//   - delivery persons and salesmen drive orders only through delivery updates
//
// Example usage:
//
//	policy := NewOrderPolicy()
//	if err := policy.AuthorizeStatusChange(actor, o, order.Cancelled); err != nil {
//	    return err
//	}
//	releases, err := o.ChangeStatus(order.Cancelled, now)
type OrderPolicy struct{}

func NewOrderPolicy() OrderPolicy {
	return OrderPolicy{}
}

// CanView reports whether actor may see o.
func (OrderPolicy) CanView(actor kernel.Actor, o *order.Order) bool {
	switch actor.Role {
	case kernel.RoleAdmin:
		return true
	case kernel.RoleCustomer:
		return actor.Is(o.CustomerID())
	case kernel.RoleSeller:
		return o.HasSeller(actor.ID)
	case kernel.RoleDelivery:
		return o.IsAssignedTo(actor.ID)
	default:
		return false
	}
}

// AuthorizeStatusChange runs every guard for moving o to next on behalf of actor,
// in order:
//
//   - errs.ErrObjectNotFound when actor cannot see o
//   - errs.ErrInvalidTransition when the status table forbids the move
//   - errs.ErrValueIsInvalid when a customer cancels an order that left PENDING
//   - errs.ErrForbidden when actor's role may not request next
//
// It never mutates o.
func (p OrderPolicy) AuthorizeStatusChange(actor kernel.Actor, o *order.Order, next order.Status) error {
	if !p.CanView(actor, o) {
		return errs.NewObjectNotFoundError("orderId", o.ID().String())
	}

	if _, err := o.Status().TransitionTo(next); err != nil {
		return err
	}

	switch actor.Role {
	case kernel.RoleAdmin:
		return nil
	case kernel.RoleCustomer:
		if next == order.Cancelled && o.Status() != order.Pending {
			return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf(
				"customers can only cancel PENDING orders, order is %s", o.Status()))
		}
		if !customerStatuses[next] {
			return errs.NewForbiddenError(fmt.Sprintf("customers cannot move an order to %s", next))
		}
		return nil
	case kernel.RoleSeller:
		if next == order.ReturnRequested {
			return errs.NewForbiddenError("only the customer can request a return")
		}
		return nil
	default:
		return errs.NewForbiddenError(fmt.Sprintf("%s cannot change order status", actor.Role))
	}
}

// AuthorizeAssignment allows admins and the order's sellers to pick a delivery person.
func (p OrderPolicy) AuthorizeAssignment(actor kernel.Actor, o *order.Order) error {
	if !p.CanView(actor, o) {
		return errs.NewObjectNotFoundError("orderId", o.ID().String())
	}
	if actor.Role != kernel.RoleAdmin && actor.Role != kernel.RoleSeller {
		return errs.NewForbiddenError("only admins and sellers assign deliveries")
	}
	return nil
}

// AuthorizeItemCancel lets the customer, a seller of the order or an admin cancel
// line itemID. When that line is the last open one the whole order is cancelled, so
// the request must also pass AuthorizeStatusChange to CANCELLED.
func (p OrderPolicy) AuthorizeItemCancel(actor kernel.Actor, o *order.Order, itemID kernel.UUID) error {
	if !p.CanView(actor, o) {
		return errs.NewObjectNotFoundError("orderId", o.ID().String())
	}
	if actor.Role == kernel.RoleDelivery {
		return errs.NewForbiddenError("delivery persons cannot cancel order lines")
	}
	if closesOrder(o, itemID) {
		return p.AuthorizeStatusChange(actor, o, order.Cancelled)
	}
	return nil
}

func closesOrder(o *order.Order, itemID kernel.UUID) bool {
	targetOpen := false
	for _, item := range o.Items() {
		if item.IsCancelled() {
			continue
		}
		if !item.ID().IsEqual(itemID) {
			return false
		}
		targetOpen = true
	}
	return targetOpen
}
