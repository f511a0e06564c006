package recipe

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

// ValidateUseCase valida una receta: verifica suficiencia de stock para TODAS
// las líneas y consume las cantidades requeridas de forma transaccional, con
// bloqueo de filas (SELECT FOR UPDATE) y Commit/Rollback.
type ValidateUseCase struct {
	txRunner   TxRunner
	recipeRepo repository.RecipeRepository
}

// NewValidateUseCase construye el caso de uso.
func NewValidateUseCase(txRunner TxRunner, recipeRepo repository.RecipeRepository) *ValidateUseCase {
	return &ValidateUseCase{txRunner: txRunner, recipeRepo: recipeRepo}
}

// Validate ejecuta la validación de la receta recipeID.
//
// Pasos: carga la receta (domain.ErrNotFound si no existe) y, dentro de una sola
// transacción: bloquea los lotes de cada producto en orden FIFO por vencimiento,
// verifica que la suma de lotes cubra la cantidad requerida y descuenta
// empezando por el lote que vence primero. Si alguna línea no alcanza, devuelve
// domain.ErrInsufficientStock y la tx se revierte completa, incluidas las líneas
// ya descontadas en esta misma pasada. Cada descuento deja un movimiento "out"
// con el mismo transaction_id.
//
// Al final relee las cantidades totales por producto (aún dentro de la tx) para
// responder updatedAssociatedProducts.
func (uc *ValidateUseCase) Validate(ctx context.Context, recipeID int64) (*dto.ValidateRecipeResponse, error) {
	rec, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	txID := uuid.New().String()
	updated := make([]dto.UpdatedProductDTO, 0, len(rec.Lines))

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		for _, line := range rec.Lines {
			required := decimal.NewFromInt(int64(line.Quantity))

			// Bloquea los lotes del producto (FIFO por vencimiento) y verifica suficiencia
			// sobre el agregado antes de tocar nada.
			batches, err := stockRepo.ListByProductForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			total := decimal.Zero
			for _, b := range batches {
				total = total.Add(b.Quantity)
			}
			if total.LessThan(required) {
				return domain.ErrInsufficientStock
			}

			// Consume empezando por el lote que vence primero.
			remaining := required
			for _, b := range batches {
				if remaining.LessThanOrEqual(decimal.Zero) {
					break
				}
				take := decimal.Min(b.Quantity, remaining)
				if take.LessThanOrEqual(decimal.Zero) {
					continue
				}
				if err := stockRepo.UpdateQuantity(b.ID, b.Quantity.Sub(take)); err != nil {
					return err
				}
				mov := &entity.StockMovement{
					TransactionID: txID,
					StockID:       b.ID,
					ProductID:     line.ProductID,
					Type:          entity.MovementTypeOut,
					Quantity:      take.Neg(),
					Reference:     rec.Name,
					CreatedAt:     now,
				}
				if err := movRepo.Create(mov); err != nil {
					return err
				}
				remaining = remaining.Sub(take)
			}
		}

		// Cantidades finales por producto, dentro de la misma tx.
		for _, line := range rec.Lines {
			totalQty, err := stockRepo.TotalByProduct(line.ProductID)
			if err != nil {
				return err
			}
			updated = append(updated, dto.UpdatedProductDTO{
				ID:              line.ProductID,
				Name:            line.ProductName,
				QuantityInStock: totalQty.IntPart(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.ValidateRecipeResponse{
		Message:                   "receta validada correctamente",
		UpdatedAssociatedProducts: updated,
	}, nil
}
