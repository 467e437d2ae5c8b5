// Package storefront orchestrates one shopping sitting: it holds the catalog
// and cart together, routes voice transcripts and advisory requests, and owns
// the status line the UI renders. Cross-cutting rules live here, such as any
// cart mutation invalidating the current styling advice.
package storefront
