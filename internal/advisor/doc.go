// Package advisor calls a generative language API to produce short styling
// suggestions for the current cart contents. Calls are single-shot: any
// failure surfaces as a fixed fallback message rather than a retry.
package advisor
