package container

// Standard describes one of the ISO container types seeded on first start.
type Standard struct {
	Code   string
	Name   string
	Type   Type
	Size   float64
	Volume float64
}

// StandardContainers returns the nine common ISO container types with their
// nominal size in feet and internal volume in cubic meters.
func StandardContainers() []Standard {
	return []Standard{
		{Code: "20DC", Name: "20ft Dry Container", Type: TypeDry, Size: 20, Volume: 33.2},
		{Code: "40DC", Name: "40ft Dry Container", Type: TypeDry, Size: 40, Volume: 67.7},
		{Code: "40HC", Name: "40ft High Cube Container", Type: TypeDry, Size: 40, Volume: 76.4},
		{Code: "20RF", Name: "20ft Refrigerated Container", Type: TypeReefer, Size: 20, Volume: 28.3},
		{Code: "40RF", Name: "40ft Refrigerated Container", Type: TypeReefer, Size: 40, Volume: 59.3},
		{Code: "20OT", Name: "20ft Open Top Container", Type: TypeOpenTop, Size: 20, Volume: 32.6},
		{Code: "40OT", Name: "40ft Open Top Container", Type: TypeOpenTop, Size: 40, Volume: 65.9},
		{Code: "20FR", Name: "20ft Flat Rack Container", Type: TypeFlatRack, Size: 20, Volume: 0},
		{Code: "40FR", Name: "40ft Flat Rack Container", Type: TypeFlatRack, Size: 40, Volume: 0},
	}
}

// Details expands a standard entry into container attributes.
func (s Standard) Details() Details {
	return Details{
		IsContainer:   true,
		Refrigerated:  s.Type == TypeReefer,
		Type:          s.Type,
		Size:          s.Size,
		Volume:        s.Volume,
		Compatibility: DefaultCompatibility(true),
	}
}
