package registryrepo

import (
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContainerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code            string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name            string    `gorm:"type:varchar(255);not null;index"`
	IsContainer     bool      `gorm:"not null"`
	Refrigerated    bool      `gorm:"not null"`
	ContainerType   string    `gorm:"type:varchar(16)"`
	Size            float64   `gorm:"column:size_ft"`
	MaxWeight       float64
	Internal        DimensionsDTO `gorm:"embedded"`
	External        DimensionsDTO `gorm:"embedded;embeddedPrefix:external_"`
	Volume          float64
	ISOCode         string `gorm:"column:iso_code;type:varchar(8)"`
	OceanCompatible bool
	AirCompatible   bool
	LandCompatible  bool
	HazmatApproved  bool
	FoodGrade       bool
	DailyRate       decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0"`
	Currency        string          `gorm:"type:char(3)"`
	Notes           string          `gorm:"type:text"`
	Active          bool            `gorm:"not null;index"`
}

// DimensionsDTO is embedded twice: as length/width/height and with an external_ prefix.
type DimensionsDTO struct {
	Length float64
	Width  float64
	Height float64
}

func (ContainerDTO) TableName() string {
	return "container_types"
}

func containerFromDomain(c *container.Container) ContainerDTO {
	d := c.Details()
	return ContainerDTO{
		ID:              c.ID().Bytes(),
		Code:            c.Code(),
		Name:            c.Name(),
		IsContainer:     d.IsContainer,
		Refrigerated:    d.Refrigerated,
		ContainerType:   string(d.Type),
		Size:            d.Size,
		MaxWeight:       d.MaxWeight,
		Internal:        DimensionsDTO(d.Internal),
		External:        DimensionsDTO(d.External),
		Volume:          c.Volume(),
		ISOCode:         d.ISOCode,
		OceanCompatible: d.Compatibility.Ocean,
		AirCompatible:   d.Compatibility.Air,
		LandCompatible:  d.Compatibility.Land,
		HazmatApproved:  d.HazmatApproved,
		FoodGrade:       d.FoodGrade,
		DailyRate:       d.DailyRate,
		Currency:        d.Currency.String(),
		Notes:           d.Notes,
		Active:          c.IsActive(),
	}
}

func containerToDomain(dto ContainerDTO) (*container.Container, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return container.RestoreContainer(id, dto.Code, dto.Name, container.Details{
		IsContainer:  dto.IsContainer,
		Refrigerated: dto.Refrigerated,
		Type:         container.Type(dto.ContainerType),
		Size:         dto.Size,
		MaxWeight:    dto.MaxWeight,
		Internal:     container.Dimensions(dto.Internal),
		External:     container.Dimensions(dto.External),
		Volume:       dto.Volume,
		ISOCode:      dto.ISOCode,
		Compatibility: container.Compatibility{
			Ocean: dto.OceanCompatible,
			Air:   dto.AirCompatible,
			Land:  dto.LandCompatible,
		},
		HazmatApproved: dto.HazmatApproved,
		FoodGrade:      dto.FoodGrade,
		DailyRate:      dto.DailyRate,
		Currency:       kernel.Currency(dto.Currency),
		Notes:          dto.Notes,
	}, dto.Active)
}
