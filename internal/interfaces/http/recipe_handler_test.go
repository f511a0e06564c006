package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apprecipe "github.com/jhoicas/Recetario-api/internal/application/recipe"
	appstock "github.com/jhoicas/Recetario-api/internal/application/stock"
	"github.com/jhoicas/Recetario-api/internal/application/usecase"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Recetario-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (puertos de repositorio + TxRunner con rollback)
// ──────────────────────────────────────────────────────────────────────────────

type memStockRepo struct {
	entries []*entity.StockEntry
	nextID  int64
}

func (r *memStockRepo) add(productID, qty int64) {
	r.nextID++
	r.entries = append(r.entries, &entity.StockEntry{
		ID: r.nextID, ProductID: productID, Quantity: decimal.NewFromInt(qty),
	})
}

func (r *memStockRepo) Create(entry *entity.StockEntry) error {
	r.nextID++
	entry.ID = r.nextID
	copied := *entry
	r.entries = append(r.entries, &copied)
	return nil
}

func (r *memStockRepo) ListAll() ([]repository.StockWithProduct, error) {
	out := make([]repository.StockWithProduct, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		out = append(out, repository.StockWithProduct{Entry: *r.entries[i]})
	}
	return out, nil
}

func (r *memStockRepo) AggregateByProduct() (map[int64]decimal.Decimal, error) {
	agg := make(map[int64]decimal.Decimal)
	for _, e := range r.entries {
		agg[e.ProductID] = agg[e.ProductID].Add(e.Quantity)
	}
	return agg, nil
}

func (r *memStockRepo) ListByProductForUpdate(productID int64) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.entries {
		if e.ProductID == productID {
			copied := *e
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memStockRepo) UpdateQuantity(entryID int64, quantity decimal.Decimal) error {
	for _, e := range r.entries {
		if e.ID == entryID {
			e.Quantity = quantity
		}
	}
	return nil
}

func (r *memStockRepo) TotalByProduct(productID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range r.entries {
		if e.ProductID == productID {
			total = total.Add(e.Quantity)
		}
	}
	return total, nil
}

type memMovementRepo struct{}

func (r *memMovementRepo) Create(mov *entity.StockMovement) error { return nil }

type memTxRunner struct {
	stock *memStockRepo
}

func (t *memTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	snapshot := make([]*entity.StockEntry, len(t.stock.entries))
	for i, e := range t.stock.entries {
		copied := *e
		snapshot[i] = &copied
	}
	if err := fn(t.stock, &memMovementRepo{}); err != nil {
		t.stock.entries = snapshot
		return err
	}
	return nil
}

type memRecipeRepo struct {
	recipes []*entity.Recipe
}

func (r *memRecipeRepo) GetByID(id int64) (*entity.Recipe, error) {
	for _, rec := range r.recipes {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *memRecipeRepo) ListWithLines() ([]*entity.Recipe, error) {
	return r.recipes, nil
}

type memProductRepo struct {
	products []*entity.Product
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, len(r.products))
	copy(out, r.products)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// buildTestApp levanta una app Fiber con las rutas reales y repos en memoria:
// tortilla (huevos x2, leche x1), tostada (pan x1); huevos=5, leche=0, pan=3.
func buildTestApp() (*fiber.App, *memStockRepo) {
	stockRepo := &memStockRepo{}
	stockRepo.add(10, 5) // huevos
	stockRepo.add(20, 0) // leche
	stockRepo.add(30, 3) // pan

	recipeRepo := &memRecipeRepo{recipes: []*entity.Recipe{
		{ID: 1, Name: "Tortilla", Lines: []entity.RecipeLine{
			{ProductID: 10, ProductName: "Huevos", Quantity: 2},
			{ProductID: 20, ProductName: "Leche", Quantity: 1},
		}},
		{ID: 2, Name: "Tostada", Lines: []entity.RecipeLine{
			{ProductID: 30, ProductName: "Pan", Quantity: 1},
		}},
	}}
	productRepo := &memProductRepo{products: []*entity.Product{
		{ID: 10, Name: "Huevos"}, {ID: 20, Name: "Leche"}, {ID: 30, Name: "Pan"},
	}}
	txRunner := &memTxRunner{stock: stockRepo}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:       usecase.NewProductUseCase(productRepo),
		StockUC:         appstock.NewUseCase(txRunner, stockRepo, productRepo),
		PossibleRecipes: apprecipe.NewPossibleRecipesUseCase(recipeRepo, stockRepo),
		ValidateRecipe:  apprecipe.NewValidateUseCase(txRunner, recipeRepo),
	})
	return app, stockRepo
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// GET /api/possible-recipes: huevos available con quantity_in_recipe, leche
// unavailable y sin quantity_in_recipe.
func TestGetPossibleRecipes(t *testing.T) {
	app, _ := buildTestApp()

	resp, body := doJSON(t, app, http.MethodGet, "/api/possible-recipes", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	recipes := body["possibleRecipes"].([]any)
	require.Len(t, recipes, 2)

	tortilla := recipes[0].(map[string]any)
	assert.Equal(t, "Tortilla", tortilla["name"])
	products := tortilla["products"].([]any)
	require.Len(t, products, 2)

	huevos := products[0].(map[string]any)
	assert.Equal(t, "available", huevos["status"])
	assert.Equal(t, float64(2), huevos["quantity_in_recipe"])

	leche := products[1].(map[string]any)
	assert.Equal(t, "unavailable", leche["status"])
	_, tieneCantidad := leche["quantity_in_recipe"]
	assert.False(t, tieneCantidad, "una línea unavailable no informa quantity_in_recipe")
}

// POST /api/validate-recipe con stock suficiente → 200 y cantidades actualizadas.
func TestValidateRecipe_Exitosa(t *testing.T) {
	app, _ := buildTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/validate-recipe", map[string]any{"recipeId": 2})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	updated := body["updatedAssociatedProducts"].([]any)
	require.Len(t, updated, 1)
	pan := updated[0].(map[string]any)
	assert.Equal(t, "Pan", pan["name"])
	assert.Equal(t, float64(2), pan["quantity_in_stock"])
}

// POST /api/validate-recipe con stock insuficiente → 409 INSUFFICIENT_STOCK y
// ningún descuento aplicado (huevos sigue en 5).
func TestValidateRecipe_StockInsuficiente(t *testing.T) {
	app, stockRepo := buildTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/validate-recipe", map[string]any{"recipeId": 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])

	total, _ := stockRepo.TotalByProduct(10)
	assert.True(t, total.Equal(decimal.NewFromInt(5)), "el rollback debe dejar los huevos intactos")
}

func TestValidateRecipe_NoEncontrada(t *testing.T) {
	app, _ := buildTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/validate-recipe", map[string]any{"recipeId": 99})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestValidateRecipe_BodyInvalido(t *testing.T) {
	app, _ := buildTestApp()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/validate-recipe", map[string]any{"recipeId": 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// POST /api/addProductInStock con campos inválidos → 400 enumerando los campos.
func TestAddProductInStock_Validacion(t *testing.T) {
	app, _ := buildTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/addProductInStock", map[string]any{
		"product_id":      10,
		"quantity":        -1,
		"expiration_date": "no-es-fecha",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])

	fields := body["fields"].(map[string]any)
	assert.Contains(t, fields, "quantity")
	assert.Contains(t, fields, "expiration_date")
	assert.NotContains(t, fields, "product_id")
}

func TestAddProductInStock_Exitoso(t *testing.T) {
	app, _ := buildTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/addProductInStock", map[string]any{
		"product_id":      20,
		"quantity":        4,
		"expiration_date": "2026-11-30",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "producto agregado al stock", body["message"])

	created := body["stock"].(map[string]any)
	assert.Equal(t, float64(4), created["quantity"])
	assert.Equal(t, "2026-11-30", created["expiration_date"])
}

func TestListProducts_MasRecientesPrimero(t *testing.T) {
	app, _ := buildTestApp()

	resp, body := doJSON(t, app, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	products := body["products"].([]any)
	require.Len(t, products, 3)
	first := products[0].(map[string]any)
	assert.Equal(t, float64(30), first["id"])
}

func TestListStock(t *testing.T) {
	app, _ := buildTestApp()

	resp, body := doJSON(t, app, http.MethodGet, "/api/productsInStock", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	items := body["productsInStock"].([]any)
	require.Len(t, items, 3)
	first := items[0].(map[string]any)
	assert.Equal(t, float64(30), first["product_id"], "el lote más reciente va primero")
}
