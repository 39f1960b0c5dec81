// Package costline implements the cost ledger shared by quotations and shipments.
//
// A CostLine carries its type (sell or buy), category, quantity and unit price;
// its amount is derived and recomputed on every quantity or price change. Lines
// is the collection a parent owns and aggregates totals from. Currency is not a
// line attribute: lines are always expressed in their parent's currency.
package costline
