package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/internal/application/stock"
	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para el alta de stock
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	entries []*entity.StockEntry
	nextID  int64
}

func (r *fakeStockRepo) Create(entry *entity.StockEntry) error {
	r.nextID++
	entry.ID = r.nextID
	entry.CreatedAt = time.Now()
	copied := *entry
	r.entries = append(r.entries, &copied)
	return nil
}

func (r *fakeStockRepo) ListAll() ([]repository.StockWithProduct, error) {
	// Más recientes primero, como el adaptador real (id DESC).
	out := make([]repository.StockWithProduct, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		out = append(out, repository.StockWithProduct{Entry: *r.entries[i]})
	}
	return out, nil
}

func (r *fakeStockRepo) AggregateByProduct() (map[int64]decimal.Decimal, error) {
	return map[int64]decimal.Decimal{}, nil
}

func (r *fakeStockRepo) ListByProductForUpdate(productID int64) ([]*entity.StockEntry, error) {
	return nil, nil
}

func (r *fakeStockRepo) UpdateQuantity(entryID int64, quantity decimal.Decimal) error {
	return nil
}

func (r *fakeStockRepo) TotalByProduct(productID int64) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(mov *entity.StockMovement) error {
	copied := *mov
	r.movements = append(r.movements, &copied)
	return nil
}

type fakeTxRunner struct {
	stock *fakeStockRepo
	movs  *fakeMovementRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(t.stock, t.movs)
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	return nil, nil
}

func setup() (*stock.UseCase, *fakeStockRepo, *fakeMovementRepo) {
	stockRepo := &fakeStockRepo{}
	movRepo := &fakeMovementRepo{}
	productRepo := &fakeProductRepo{products: map[int64]*entity.Product{
		10: {ID: 10, Name: "Huevos"},
	}}
	uc := stock.NewUseCase(&fakeTxRunner{stock: stockRepo, movs: movRepo}, stockRepo, productRepo)
	return uc, stockRepo, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAddToStock_CreaLoteYMovimiento(t *testing.T) {
	uc, stockRepo, movRepo := setup()

	out, err := uc.AddToStock(context.Background(), dto.AddStockRequest{
		ProductID:      10,
		Quantity:       5,
		ExpirationDate: "2026-10-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "producto agregado al stock", out.Message)
	assert.Equal(t, int64(10), out.Stock.ProductID)
	assert.Equal(t, int64(5), out.Stock.Quantity)
	assert.Equal(t, "2026-10-01", out.Stock.ExpirationDate)
	require.NotNil(t, out.Stock.Product)
	assert.Equal(t, "Huevos", out.Stock.Product.Name)

	require.Len(t, stockRepo.entries, 1)
	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, entity.MovementTypeIn, movRepo.movements[0].Type)
	assert.True(t, movRepo.movements[0].Quantity.Equal(decimal.NewFromInt(5)))
}

// Cantidad cero es válida (lote vacío permitido; el invariante es quantity >= 0).
func TestAddToStock_CantidadCeroEsValida(t *testing.T) {
	uc, _, _ := setup()

	out, err := uc.AddToStock(context.Background(), dto.AddStockRequest{
		ProductID:      10,
		Quantity:       0,
		ExpirationDate: "2026-10-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Stock.Quantity)
}

// La validación enumera TODOS los campos inválidos, no solo el primero.
func TestAddToStock_EnumeraCamposInvalidos(t *testing.T) {
	uc, stockRepo, movRepo := setup()

	out, err := uc.AddToStock(context.Background(), dto.AddStockRequest{
		ProductID:      0,
		Quantity:       -3,
		ExpirationDate: "ayer",
	})
	require.Error(t, err)
	assert.Nil(t, out)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "product_id")
	assert.Contains(t, verr.Fields, "quantity")
	assert.Contains(t, verr.Fields, "expiration_date")

	assert.Empty(t, stockRepo.entries, "entrada inválida no debe persistir nada")
	assert.Empty(t, movRepo.movements)
}

func TestAddToStock_ProductoInexistente(t *testing.T) {
	uc, _, _ := setup()

	out, err := uc.AddToStock(context.Background(), dto.AddStockRequest{
		ProductID:      999,
		Quantity:       1,
		ExpirationDate: "2026-10-01",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
}

func TestListStock_MasRecientesPrimero(t *testing.T) {
	uc, stockRepo, _ := setup()
	exp, _ := time.Parse("2006-01-02", "2026-10-01")
	_ = stockRepo.Create(&entity.StockEntry{ProductID: 10, Quantity: decimal.NewFromInt(2), ExpirationDate: exp})
	_ = stockRepo.Create(&entity.StockEntry{ProductID: 10, Quantity: decimal.NewFromInt(7), ExpirationDate: exp})

	out, err := uc.ListStock(context.Background())
	require.NoError(t, err)
	require.Len(t, out.ProductsInStock, 2)
	assert.Equal(t, int64(7), out.ProductsInStock[0].Quantity, "el lote más reciente va primero")
	assert.Equal(t, int64(2), out.ProductsInStock[1].Quantity)
}
