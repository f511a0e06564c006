package recipe

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

// Estados de disponibilidad de un producto dentro de una receta.
const (
	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
)

// Snapshot cantidades agregadas por producto (suma de todos los lotes).
type Snapshot map[int64]decimal.Decimal

// ProductAvailability estado de una línea de la receta contra el snapshot.
// QuantityInRecipe solo se informa cuando el producto está disponible.
type ProductAvailability struct {
	ProductID        int64
	Name             string
	Status           string
	QuantityInRecipe int
}

// RecipeAvailability resultado de evaluar una receta completa.
type RecipeAvailability struct {
	RecipeID int64
	Name     string
	Products []ProductAvailability
}

// EvaluateRecipe evalúa la disponibilidad de cada línea de la receta contra el snapshot.
// Una línea está "available" si el producto tiene cantidad agregada > 0; la señal es
// deliberadamente más débil que la verificación de suficiencia de la validación
// (una receta puede mostrar stock y aun así fallar al validarse). Función pura:
// no muta el stock y nunca devuelve error; la ausencia de stock es un estado válido.
func EvaluateRecipe(r *entity.Recipe, snapshot Snapshot) RecipeAvailability {
	out := RecipeAvailability{
		RecipeID: r.ID,
		Name:     r.Name,
		Products: make([]ProductAvailability, 0, len(r.Lines)),
	}
	for _, line := range r.Lines {
		pa := ProductAvailability{
			ProductID: line.ProductID,
			Name:      line.ProductName,
			Status:    StatusUnavailable,
		}
		if qty, ok := snapshot[line.ProductID]; ok && qty.GreaterThan(decimal.Zero) {
			pa.Status = StatusAvailable
			pa.QuantityInRecipe = line.Quantity
		}
		out.Products = append(out.Products, pa)
	}
	return out
}

// EvaluateAllRecipes aplica EvaluateRecipe sobre todo el catálogo
// preservando el orden relativo de entrada.
func EvaluateAllRecipes(recipes []*entity.Recipe, snapshot Snapshot) []RecipeAvailability {
	out := make([]RecipeAvailability, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, EvaluateRecipe(r, snapshot))
	}
	return out
}
