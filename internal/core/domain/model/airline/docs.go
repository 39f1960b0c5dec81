// Package airline models the airlines registry. IATA and ICAO designators are
// optional but format-checked whenever present.
package airline
