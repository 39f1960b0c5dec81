package registryrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/vessel"

	"github.com/google/uuid"
)

type VesselDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code         string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	Country      string    `gorm:"type:char(2);not null"`
	GlobalZone   string    `gorm:"type:varchar(64)"`
	VesselType   string    `gorm:"type:varchar(16)"`
	IMO          string    `gorm:"column:imo;type:varchar(7)"`
	MMSI         string    `gorm:"column:mmsi;type:varchar(16)"`
	CallSign     string    `gorm:"type:varchar(16)"`
	GrossTonnage float64
	NetTonnage   float64
	Deadweight   float64
	TEUCapacity  int `gorm:"column:teu_capacity"`
	Length       float64
	Beam         float64
	Draft        float64
	Owner        string `gorm:"type:varchar(255)"`
	Operator     string `gorm:"type:varchar(255)"`
	Notes        string `gorm:"type:text"`
	Active       bool   `gorm:"not null;index"`
}

func (VesselDTO) TableName() string {
	return "vessels"
}

func vesselFromDomain(v *vessel.Vessel) VesselDTO {
	d := v.Details()
	return VesselDTO{
		ID:           v.ID().Bytes(),
		Code:         v.Code(),
		Name:         v.Name(),
		Country:      v.Country().String(),
		GlobalZone:   d.GlobalZone,
		VesselType:   string(d.Type),
		IMO:          d.IMO,
		MMSI:         d.MMSI,
		CallSign:     d.CallSign,
		GrossTonnage: d.GrossTonnage,
		NetTonnage:   d.NetTonnage,
		Deadweight:   d.Deadweight,
		TEUCapacity:  d.TEUCapacity,
		Length:       d.Length,
		Beam:         d.Beam,
		Draft:        d.Draft,
		Owner:        d.Owner,
		Operator:     d.Operator,
		Notes:        d.Notes,
		Active:       v.IsActive(),
	}
}

func vesselToDomain(dto VesselDTO) (*vessel.Vessel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vessel.RestoreVessel(id, dto.Code, dto.Name, kernel.CountryCode(dto.Country), vessel.Details{
		GlobalZone:   dto.GlobalZone,
		Type:         vessel.Type(dto.VesselType),
		IMO:          dto.IMO,
		MMSI:         dto.MMSI,
		CallSign:     dto.CallSign,
		GrossTonnage: dto.GrossTonnage,
		NetTonnage:   dto.NetTonnage,
		Deadweight:   dto.Deadweight,
		TEUCapacity:  dto.TEUCapacity,
		Length:       dto.Length,
		Beam:         dto.Beam,
		Draft:        dto.Draft,
		Owner:        dto.Owner,
		Operator:     dto.Operator,
		Notes:        dto.Notes,
	}, dto.Active)
}
