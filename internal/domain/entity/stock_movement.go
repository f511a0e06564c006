package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada (alta de lote)
	MovementTypeOut = "out" // salida (consumo por validación de receta)
)

// StockMovement registro de auditoría de cada cambio de cantidad en un lote.
// Los decrementos de una misma validación comparten TransactionID.
type StockMovement struct {
	ID            int64
	TransactionID string
	StockID       int64
	ProductID     int64
	Type          string          // in, out
	Quantity      decimal.Decimal // positiva para in, negativa para out
	Reference     string          // nombre de la receta o motivo de la entrada
	CreatedAt     time.Time
}
