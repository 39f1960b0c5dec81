// Package kernel holds the value objects shared by every freight aggregate.
//
// The package includes:
//   - UUID: record identifier wrapping github.com/google/uuid
//   - GeoPoint: validated latitude/longitude pair for ports
//   - TransportMode, ServiceType, Direction: routing vocabulary of quotations and shipments
//   - CountryCode, Currency: normalized ISO codes
//
// Values are immutable. Zero values of constructed types fail Validate.
package kernel
