// Package saleorder holds the customer order generated when a freight quotation
// is confirmed. It carries one line per sell cost line of the quotation and is
// immutable once created.
package saleorder
