package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry representa un lote de stock de un producto con fecha de vencimiento.
// Un producto puede tener varios lotes; la cantidad disponible es la suma.
// Invariante: Quantity >= 0 siempre (un decremento que la dejaría negativa se rechaza).
type StockEntry struct {
	ID             int64
	ProductID      int64
	Quantity       decimal.Decimal
	ExpirationDate time.Time
	CreatedAt      time.Time
}
