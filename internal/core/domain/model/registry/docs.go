// Package registry holds what the five reference registries (ports, vessels,
// airlines, incoterms and containers) have in common: their kind, the Record
// contract used by uniqueness checks and list views, and code/name normalization.
package registry
