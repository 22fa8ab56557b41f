// Package user contains the User aggregate and the consumer Cart.
//
// A User is one account with exactly one role: consumer, seller, or delivery
// person. Consumers own a Cart, the mutable list of item references and
// quantities that the order engine converts into an immutable order at
// checkout. All cart arithmetic (clamped adds, guest-cart merge aggregation)
// lives here so the persistence layer can mirror it with atomic store
// operations without duplicating the rules.
package user
