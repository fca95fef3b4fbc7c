// Package kernel provides the primitives shared by every marketplace aggregate.
//
// The package includes:
//   - UUID: the identifier value object for aggregates and actors
//   - Actor and Role: the authenticated principal handed to every use case
//   - TransitionTable: the immutable status graph behind each state machine
package kernel
