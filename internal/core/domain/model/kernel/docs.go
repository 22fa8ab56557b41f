// Package kernel contains shared value objects used across all domain aggregates.
//
// UUID wraps github.com/google/uuid as a validated identity value object.
// Price is a tagged variant pairing a pricing unit with an amount, giving the
// catalog and the order engine a single price representation to agree on.
package kernel
