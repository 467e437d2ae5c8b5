// Package catalog models the storefront's read-side data: products,
// categories, and customers served by the backend REST API.
//
// The Client fetches the three list endpoints; the Store holds one page
// load's worth of state, applies the category filter, and tracks the
// selected customer (defaulting to the first one loaded). Lists are replaced
// wholesale, never patched.
package catalog
