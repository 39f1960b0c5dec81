// Package services provides domain services for workflows that span more than
// one aggregate.
//
// The package includes:
//   - QuotationConverter: turns a quotation into its sale order on confirmation
//     and into a shipment once confirmed
package services
