// Package config loads, normalizes, and validates boutique configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// GEMINI_API_KEY. The Config type centralizes every knob the CLI needs: the
// backend API endpoint, the style advisor connection, speech settings, and
// the local data directory that holds the cart database and session file.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
