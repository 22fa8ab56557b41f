// Package services contains domain services that coordinate multiple
// aggregates. Checkout converts a cart plus catalog state into a placed
// order; it holds the single-shop rule that no one aggregate can enforce
// alone.
package services
