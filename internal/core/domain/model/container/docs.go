// Package container models the containers and packages registry.
//
// Volume is derived: once internal length, width and height are all known it is
// their product and cannot be written directly. Until then a measured volume may
// be recorded by hand.
package container
