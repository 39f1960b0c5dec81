package shipment

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrRouteIsNotConstructed = errs.NewValueIsRequiredError("route must be created via NewRoute or RestoreRoute")

	ErrSamePorts = errs.NewBusinessRuleViolationError("origin and destination ports cannot be the same")
)

// Route is where a shipment travels from and to, and how.
type Route struct {
	origin      kernel.UUID
	destination kernel.UUID
	mode        kernel.TransportMode
	guard       guard.ConstructorGuard
}

// NewRoute checks the ports differ and both handle the transport mode.
func NewRoute(origin, destination *port.Port, mode kernel.TransportMode) (Route, error) {
	if err := errors.Join(origin.Validate(), destination.Validate(), mode.Validate()); err != nil {
		return Route{}, err
	}
	if origin.IsEqual(destination) {
		return Route{}, ErrSamePorts
	}

	var unsupported []string
	for _, p := range []*port.Port{origin, destination} {
		if !p.Supports(mode) {
			unsupported = append(unsupported, p.Code())
		}
	}
	if len(unsupported) > 0 {
		return Route{}, errs.NewBusinessRuleViolationErrorWithCause(
			"selected ports must support the transport mode",
			fmt.Errorf("%v do not support %s", unsupported, mode.Label()),
		)
	}

	return Route{
		origin:      origin.ID(),
		destination: destination.ID(),
		mode:        mode,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreRoute rebuilds a stored route. Port capabilities are checked when the route is written, not on load.
func RestoreRoute(origin, destination kernel.UUID, mode kernel.TransportMode) (Route, error) {
	if err := errors.Join(origin.Validate(), destination.Validate(), mode.Validate()); err != nil {
		return Route{}, err
	}
	if origin.IsEqual(destination) {
		return Route{}, ErrSamePorts
	}
	return Route{
		origin:      origin,
		destination: destination,
		mode:        mode,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r Route) Origin() kernel.UUID {
	return r.origin
}

func (r Route) Destination() kernel.UUID {
	return r.destination
}

func (r Route) Mode() kernel.TransportMode {
	return r.mode
}
