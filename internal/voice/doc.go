// Package voice maps speech transcripts to add-to-cart intents.
//
// Recognition itself is an external capability modelled by the Recognizer
// interface (start, stop, and a started/result/error/ended event sequence).
// The interpreter only sees finished transcripts: it looks for a fixed set
// of Spanish trigger words and resolves the remainder against product names
// by case-insensitive substring containment, first match in catalog order.
package voice
