// Package order holds the Order aggregate and its three state machines.
//
//   - Status: the commercial lifecycle (PENDING ... COMPLETED, returns, refunds)
//   - DeliveryStatus: the physical hand-off (PENDING ... DELIVERED / RETURNED)
//   - PaymentStatus: PENDING, PAID, FAILED, REFUNDED
//
// Each machine is a kernel.TransitionTable. Every mutation first checks the table and
// leaves the aggregate untouched when the move is rejected, so callers can rely on
// "error means nothing changed". Stock effects are returned as StockRelease values
// rather than applied here; the application layer writes them in the same transaction
// as the status change.
package order
