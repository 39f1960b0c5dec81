package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// TransportMode is the way cargo moves between two ports.
type TransportMode string

const (
	TransportModeAir   TransportMode = "air"
	TransportModeOcean TransportMode = "ocean"
	TransportModeLand  TransportMode = "land"
)

func getValidTransportModes() map[TransportMode]string {
	return map[TransportMode]string{
		TransportModeAir:   "Air Freight",
		TransportModeOcean: "Ocean Freight",
		TransportModeLand:  "Land Freight",
	}
}

// ParseTransportMode accepts the stored form ("air", "ocean", "land").
func ParseTransportMode(s string) (TransportMode, error) {
	m := TransportMode(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m TransportMode) Validate() error {
	if _, ok := getValidTransportModes()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transport mode", fmt.Errorf("%q is not a valid transport mode", string(m)))
	}
	return nil
}

// Label returns the human readable name, e.g. "Ocean Freight".
func (m TransportMode) Label() string {
	return getValidTransportModes()[m]
}

func (m TransportMode) String() string {
	return string(m)
}
