// Package order contains the Order aggregate and its state machine.
//
// An order is an immutable snapshot of a consumer's cart against exactly one
// shop, plus a mutable fulfilment status driven by the seller and the
// assigned delivery person. Status transitions are expressed on the Status
// value object and applied through aggregate methods, so an order can never
// hold an inconsistent combination of status and delivery-person assignment.
// Persistence writes transitions with a compare-and-swap on the version the
// aggregate was loaded at.
package order
