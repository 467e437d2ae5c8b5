// Package cart implements the shopping cart reducer and its persistence.
//
// The Cart type holds an ordered list of (product, quantity) lines with at
// most one line per product: add increments, a quantity below 1 removes, and
// the total renders with fixed two-decimal precision. The Store persists
// lines to a local SQLite database so consecutive CLI invocations behave
// like one storefront session.
package cart
