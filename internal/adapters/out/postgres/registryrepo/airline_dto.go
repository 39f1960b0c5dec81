package registryrepo

import (
	"freight/internal/core/domain/model/airline"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AirlineDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code                 string    `gorm:"type:varchar(10);not null;uniqueIndex"`
	Name                 string    `gorm:"type:varchar(255);not null;index"`
	Country              string    `gorm:"type:char(2);not null"`
	IATA                 string    `gorm:"column:iata;type:varchar(3)"`
	ICAO                 string    `gorm:"column:icao;type:varchar(4)"`
	AirlineType          string    `gorm:"type:varchar(16)"`
	Website              string    `gorm:"type:varchar(255)"`
	Phone                string    `gorm:"type:varchar(64)"`
	Email                string    `gorm:"type:varchar(255)"`
	FleetSize            int
	CargoFleetSize       int
	DomesticService      bool
	InternationalService bool
	Notes                string `gorm:"type:text"`
	Active               bool   `gorm:"not null;index"`
}

func (AirlineDTO) TableName() string {
	return "airlines"
}

func airlineFromDomain(a *airline.Airline) AirlineDTO {
	d := a.Details()
	return AirlineDTO{
		ID:                   a.ID().Bytes(),
		Code:                 a.Code(),
		Name:                 a.Name(),
		Country:              a.Country().String(),
		IATA:                 d.IATA,
		ICAO:                 d.ICAO,
		AirlineType:          string(d.Type),
		Website:              d.Website,
		Phone:                d.Phone,
		Email:                d.Email,
		FleetSize:            d.FleetSize,
		CargoFleetSize:       d.CargoFleetSize,
		DomesticService:      d.DomesticService,
		InternationalService: d.InternationalService,
		Notes:                d.Notes,
		Active:               a.IsActive(),
	}
}

func airlineToDomain(dto AirlineDTO) (*airline.Airline, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return airline.RestoreAirline(id, dto.Code, dto.Name, kernel.CountryCode(dto.Country), airline.Details{
		IATA:                 dto.IATA,
		ICAO:                 dto.ICAO,
		Type:                 airline.Type(dto.AirlineType),
		Website:              dto.Website,
		Phone:                dto.Phone,
		Email:                dto.Email,
		FleetSize:            dto.FleetSize,
		CargoFleetSize:       dto.CargoFleetSize,
		DomesticService:      dto.DomesticService,
		InternationalService: dto.InternationalService,
		Notes:                dto.Notes,
	}, dto.Active)
}
