package stock

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

const dateLayout = "2006-01-02"

// UseCase maneja el alta de lotes de stock y los listados de stock.
type UseCase struct {
	txRunner    TxRunner
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso. stockRepo es el adaptador atado al pool
// (solo lecturas); las escrituras van por txRunner.
func NewUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, stockRepo: stockRepo, productRepo: productRepo}
}

// AddToStock valida la entrada y crea un lote de stock junto con su movimiento "in".
// Entrada inválida devuelve *domain.ValidationError enumerando los campos;
// producto inexistente devuelve domain.ErrNotFound.
func (uc *UseCase) AddToStock(ctx context.Context, in dto.AddStockRequest) (*dto.AddStockResponse, error) {
	verr := domain.NewValidationError()
	if in.ProductID <= 0 {
		verr.Add("product_id", "es requerido y debe ser un entero positivo")
	}
	if in.Quantity < 0 {
		verr.Add("quantity", "debe ser un entero mayor o igual a cero")
	}
	expiration, err := time.Parse(dateLayout, in.ExpirationDate)
	if err != nil {
		verr.Add("expiration_date", "debe ser una fecha válida con formato YYYY-MM-DD")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	entry := &entity.StockEntry{
		ProductID:      in.ProductID,
		Quantity:       decimal.NewFromInt(in.Quantity),
		ExpirationDate: expiration,
	}
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		if err := stockRepo.Create(entry); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			TransactionID: uuid.New().String(),
			StockID:       entry.ID,
			ProductID:     entry.ProductID,
			Type:          entity.MovementTypeIn,
			Quantity:      entry.Quantity,
			Reference:     "alta de stock",
			CreatedAt:     time.Now(),
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}

	return &dto.AddStockResponse{
		Message: "producto agregado al stock",
		Stock: dto.StockResponse{
			ID:             entry.ID,
			ProductID:      entry.ProductID,
			Quantity:       entry.Quantity.IntPart(),
			ExpirationDate: entry.ExpirationDate.Format(dateLayout),
			Product:        &dto.ProductResponse{ID: product.ID, Name: product.Name},
		},
	}, nil
}

// ListStock devuelve todos los lotes con su producto, más recientes primero.
func (uc *UseCase) ListStock(ctx context.Context) (*dto.StockListResponse, error) {
	items, err := uc.stockRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.StockResponse{
			ID:             it.Entry.ID,
			ProductID:      it.Entry.ProductID,
			Quantity:       it.Entry.Quantity.IntPart(),
			ExpirationDate: it.Entry.ExpirationDate.Format(dateLayout),
			Product:        &dto.ProductResponse{ID: it.Product.ID, Name: it.Product.Name},
		})
	}
	return &dto.StockListResponse{ProductsInStock: out}, nil
}
