package registryrepo

import (
	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type IncotermDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code               string    `gorm:"type:varchar(10);not null;uniqueIndex"`
	Name               string    `gorm:"type:varchar(255);not null"`
	TermGroup          string    `gorm:"type:varchar(1)"`
	TransportMode      string    `gorm:"type:varchar(16);not null"`
	RiskTransferPoint  string    `gorm:"type:text"`
	CostResponsibility string    `gorm:"type:text"`
	InsuranceRequired  bool
	ExportClearance    string `gorm:"type:varchar(8);not null"`
	ImportClearance    string `gorm:"type:varchar(8);not null"`
	YearVersion        string `gorm:"type:varchar(8);not null"`
	Notes              string `gorm:"type:text"`
	Active             bool   `gorm:"not null;index"`
}

func (IncotermDTO) TableName() string {
	return "incoterms"
}

func incotermFromDomain(i *incoterm.Incoterm) IncotermDTO {
	d := i.Details()
	return IncotermDTO{
		ID:                 i.ID().Bytes(),
		Code:               i.Code(),
		Name:               i.Name(),
		TermGroup:          string(d.Group),
		TransportMode:      string(d.Mode),
		RiskTransferPoint:  d.RiskTransferPoint,
		CostResponsibility: d.CostResponsibility,
		InsuranceRequired:  d.InsuranceRequired,
		ExportClearance:    string(d.ExportClearance),
		ImportClearance:    string(d.ImportClearance),
		YearVersion:        d.YearVersion,
		Notes:              d.Notes,
		Active:             i.IsActive(),
	}
}

func incotermToDomain(dto IncotermDTO) (*incoterm.Incoterm, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return incoterm.RestoreIncoterm(id, dto.Code, dto.Name, incoterm.Details{
		Group:              incoterm.Group(dto.TermGroup),
		Mode:               incoterm.Mode(dto.TransportMode),
		RiskTransferPoint:  dto.RiskTransferPoint,
		CostResponsibility: dto.CostResponsibility,
		InsuranceRequired:  dto.InsuranceRequired,
		ExportClearance:    incoterm.Clearance(dto.ExportClearance),
		ImportClearance:    incoterm.Clearance(dto.ImportClearance),
		YearVersion:        dto.YearVersion,
		Notes:              dto.Notes,
	}, dto.Active)
}
