// Package quotation models freight quotations: the priced proposal sent to a
// customer before any cargo moves. A confirmed quotation spawns a sale order and
// can be converted once into a shipment; both steps are carried out by
// services.QuotationConverter.
package quotation
