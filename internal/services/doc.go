// Package services defines shared utilities consumed by the storefront
// components and external integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that classify failures
//     (transport, malformed response, precondition, unrecognized input,
//     missing capability) before the status line renders them.
//   - Context helpers that stamp correlation identifiers on outbound calls
//     for logging.
//
// Use these helpers when wiring new client logic so operational behaviour
// stays uniform: every failure becomes a status message, nothing is fatal.
package services
