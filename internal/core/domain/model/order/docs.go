// Package order provides domain entities and business logic for order
// management in the shop system. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Item: A value object for order lines, owned exclusively by an Order
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier and a valid user reference
//   - Order status follows a defined workflow:
//     pending -> confirmed -> processing -> shipped -> delivered,
//     with cancellation possible until the order ships
//   - The order total always equals the sum of item subtotals
//   - Items can only be added while an order is pending
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
