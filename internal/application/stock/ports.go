package stock

import (
	"context"

	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD (misma firma que el
// runner de validación de recetas; el adaptador de postgres satisface ambos puertos).
// El alta de un lote y su movimiento "in" se persisten como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
