// Package vessel models the vessels registry used for ocean bookings.
package vessel
