// Package checkout builds and submits sale orders against the boutique
// backend. A file lock serializes attempts so two invocations cannot submit
// the same cart twice.
package checkout
