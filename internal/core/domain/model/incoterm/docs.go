// Package incoterm models the trade terms registry. Codes are uppercased on
// every write, so "fob" and "FOB" name the same term.
package incoterm
