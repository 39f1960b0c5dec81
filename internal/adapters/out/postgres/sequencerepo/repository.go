// Package sequencerepo implements document numbering on top of the
// document_sequences table. Each code has one row whose counter is bumped
// under a row lock, so concurrent transactions never hand out the same number.
package sequencerepo

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SequenceDTO is one numbering sequence.
type SequenceDTO struct {
	Code       string `gorm:"type:varchar(64);primaryKey"`
	Prefix     string `gorm:"type:varchar(16);not null"`
	Padding    int    `gorm:"not null"`
	NextNumber int64  `gorm:"not null"`
}

func (SequenceDTO) TableName() string {
	return "document_sequences"
}

// Defaults lists the sequences the service numbers its documents with.
func Defaults() []SequenceDTO {
	return []SequenceDTO{
		{Code: ports.SequenceQuotation, Prefix: "FQ/", Padding: 5, NextNumber: 1},
		{Code: ports.SequenceShipment, Prefix: "FS/", Padding: 5, NextNumber: 1},
		{Code: ports.SequenceSaleOrder, Prefix: "SO/", Padding: 5, NextNumber: 1},
	}
}

// Seed inserts missing default sequences and leaves existing counters alone.
func Seed(ctx context.Context, db *gorm.DB) error {
	defaults := Defaults()
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error
}

type GormSequenceGenerator struct {
	db *gorm.DB
}

func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

// Next formats the current number of code and increments the counter.
func (g *GormSequenceGenerator) Next(ctx context.Context, code string) (string, error) {
	var seq SequenceDTO
	err := g.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&seq, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("sequence", code)
		}
		return "", err
	}

	err = g.db.WithContext(ctx).Model(&SequenceDTO{}).
		Where("code = ?", code).
		Update("next_number", gorm.Expr("next_number + 1")).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%0*d", seq.Prefix, seq.Padding, seq.NextNumber), nil
}
