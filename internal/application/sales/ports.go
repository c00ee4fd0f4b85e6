package sales

import (
	"context"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

// TxRunner ejecuta el cierre de venta dentro de una transacción: el descuento
// de stock de cada línea y la venta misma se confirman o se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Poster contabiliza la venta ya confirmada. Lo implementa
// ledger.PostingUseCase; la interfaz evita el acople directo entre paquetes.
type Poster interface {
	PostSale(ctx context.Context, sale *entity.Sale) error
}
