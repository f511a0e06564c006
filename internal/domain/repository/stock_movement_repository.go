package repository

import "github.com/jhoicas/Recetario-api/internal/domain/entity"

// StockMovementRepository define el puerto para registrar movimientos de stock (auditoría).
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
}
