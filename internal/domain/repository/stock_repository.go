package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

// StockWithProduct lote de stock junto con su producto (para listados).
type StockWithProduct struct {
	Entry   entity.StockEntry
	Product entity.Product
}

// StockRepository define el puerto para consultar y mutar lotes de stock.
// Las mutaciones de validación de recetas se usan dentro de transacciones
// (repos atados a la tx vía TxRunner) para garantizar consistencia.
type StockRepository interface {
	// Create persiste un nuevo lote. Rellena ID y CreatedAt.
	// Devuelve domain.ErrNotFound si el producto no existe (violación de FK).
	Create(entry *entity.StockEntry) error
	// ListAll devuelve todos los lotes con su producto, más recientes primero (id DESC).
	ListAll() ([]StockWithProduct, error)
	// AggregateByProduct devuelve la cantidad total por producto (suma de lotes).
	AggregateByProduct() (map[int64]decimal.Decimal, error)
	// ListByProductForUpdate devuelve los lotes de un producto ordenados FIFO por
	// vencimiento (expiration_date ASC, id ASC) bloqueando las filas (SELECT FOR UPDATE).
	ListByProductForUpdate(productID int64) ([]*entity.StockEntry, error)
	// UpdateQuantity fija la cantidad de un lote.
	UpdateQuantity(entryID int64, quantity decimal.Decimal) error
	// TotalByProduct devuelve la cantidad total en stock de un producto.
	TotalByProduct(productID int64) (decimal.Decimal, error)
}
