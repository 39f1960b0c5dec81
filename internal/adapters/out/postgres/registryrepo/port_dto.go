package registryrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"

	"github.com/google/uuid"
)

// PortDTO is the ports table row. Latitude and longitude are NULL when the
// port has no location.
type PortDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"type:varchar(10);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	Country   string    `gorm:"type:char(2);not null"`
	State     string    `gorm:"type:varchar(128)"`
	Air       bool      `gorm:"not null"`
	Ocean     bool      `gorm:"not null"`
	Land      bool      `gorm:"not null"`
	Timezone  string    `gorm:"type:varchar(64)"`
	Latitude  *float64
	Longitude *float64
	Notes     string `gorm:"type:text"`
	Active    bool   `gorm:"not null;index"`
}

func (PortDTO) TableName() string {
	return "ports"
}

func portFromDomain(p *port.Port) PortDTO {
	d := p.Details()
	dto := PortDTO{
		ID:       p.ID().Bytes(),
		Code:     p.Code(),
		Name:     p.Name(),
		Country:  p.Country().String(),
		State:    d.State,
		Air:      p.Modes().Air,
		Ocean:    p.Modes().Ocean,
		Land:     p.Modes().Land,
		Timezone: d.Timezone,
		Notes:    d.Notes,
		Active:   p.IsActive(),
	}
	if d.Location != nil {
		lat, lng := d.Location.Latitude(), d.Location.Longitude()
		dto.Latitude, dto.Longitude = &lat, &lng
	}
	return dto
}

func portToDomain(dto PortDTO) (*port.Port, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	details := port.Details{State: dto.State, Timezone: dto.Timezone, Notes: dto.Notes}
	if dto.Latitude != nil && dto.Longitude != nil {
		location, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return nil, err
		}
		details.Location = &location
	}

	modes := port.Modes{Air: dto.Air, Ocean: dto.Ocean, Land: dto.Land}
	return port.RestorePort(id, dto.Code, dto.Name, kernel.CountryCode(dto.Country), modes, details, dto.Active)
}
