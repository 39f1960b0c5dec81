// Package shipment models the fulfilment side of freight forwarding: a shipment
// routed between two ports, advancing through booking, documentation, transit,
// delivery and payment stages, and aggregating its cost lines into sell, buy and
// margin totals.
//
// Stages only move forward one step at a time. Cancel and ResetToDraft are the
// two exits available from any stage.
package shipment
