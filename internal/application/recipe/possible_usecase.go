package recipe

import (
	"context"

	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/internal/domain/recipe"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

// PossibleRecipesUseCase lista el catálogo de recetas anotando cada línea con su
// disponibilidad contra el stock agregado actual. Solo lectura: no muta stock.
type PossibleRecipesUseCase struct {
	recipeRepo repository.RecipeRepository
	stockRepo  repository.StockRepository
}

// NewPossibleRecipesUseCase construye el caso de uso.
func NewPossibleRecipesUseCase(
	recipeRepo repository.RecipeRepository,
	stockRepo repository.StockRepository,
) *PossibleRecipesUseCase {
	return &PossibleRecipesUseCase{recipeRepo: recipeRepo, stockRepo: stockRepo}
}

// List devuelve todas las recetas en orden de catálogo con el estado
// available/unavailable por producto y quantity_in_recipe cuando aplica.
func (uc *PossibleRecipesUseCase) List(ctx context.Context) (*dto.PossibleRecipesResponse, error) {
	recipes, err := uc.recipeRepo.ListWithLines()
	if err != nil {
		return nil, err
	}
	snapshot, err := uc.stockRepo.AggregateByProduct()
	if err != nil {
		return nil, err
	}

	results := recipe.EvaluateAllRecipes(recipes, snapshot)

	out := make([]dto.PossibleRecipeDTO, 0, len(results))
	for _, r := range results {
		item := dto.PossibleRecipeDTO{
			ID:       r.RecipeID,
			Name:     r.Name,
			Products: make([]dto.RecipeProductDTO, 0, len(r.Products)),
		}
		for _, p := range r.Products {
			item.Products = append(item.Products, dto.RecipeProductDTO{
				ID:               p.ProductID,
				Name:             p.Name,
				Status:           p.Status,
				QuantityInRecipe: p.QuantityInRecipe,
			})
		}
		out = append(out, item)
	}
	return &dto.PossibleRecipesResponse{PossibleRecipes: out}, nil
}
