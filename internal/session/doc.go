// Package session implements the client-side access gate: a demo credential
// table, a JSON session file with a role field, and role checks for the
// admin commands. The gate is intentionally client-side only, mirroring a
// localStorage-backed login with no expiry or server validation.
package session
