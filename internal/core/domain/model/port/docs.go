// Package port models the ports registry: the airports, seaports and inland
// terminals that quotations and shipments are routed between.
package port
