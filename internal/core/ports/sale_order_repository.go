package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/saleorder"
)

// SaleOrderRepository stores the sale orders generated by quotation confirmation.
// Sale orders are never updated here.
type SaleOrderRepository interface {
	Add(ctx context.Context, aggregate *saleorder.SaleOrder) error
	Get(ctx context.Context, id kernel.UUID) (*saleorder.SaleOrder, error)
}
