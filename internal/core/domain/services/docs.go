// Package services provides the domain rules that span an aggregate and the actor
// acting on it.
//
// The package includes:
//   - OrderPolicy: who may see an order and which status changes each role may request
//   - ComplaintPolicy: the same for complaints
//
// Both are stateless; use cases call them before mutating the aggregate so a rejected
// request never reaches the transaction's writes.
package services
