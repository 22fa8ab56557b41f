// Package shop contains the Shop and Item aggregates of the catalog.
//
// A shop belongs to exactly one seller and lists items priced with a single
// pricing unit each. Ownership checks are methods on the aggregates so that
// every seller-facing operation re-derives authorization at call time instead
// of trusting values captured earlier in a request.
package shop
