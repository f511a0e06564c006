package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recetario-api/internal/application/recipe"
	"github.com/jhoicas/Recetario-api/internal/application/stock"
	"github.com/jhoicas/Recetario-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	StockUC         *stock.UseCase
	PossibleRecipes *recipe.PossibleRecipesUseCase
	ValidateRecipe  *recipe.ValidateUseCase
}

// Router registra las rutas de la API (mismos paths que el sistema original).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	stockHandler := NewStockHandler(deps.StockUC)
	api.Get("/productsInStock", stockHandler.List)
	api.Post("/addProductInStock", stockHandler.Add)

	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)

	recipeHandler := NewRecipeHandler(deps.PossibleRecipes, deps.ValidateRecipe)
	api.Get("/possible-recipes", recipeHandler.GetPossibleRecipes)
	api.Post("/validate-recipe", recipeHandler.ValidateRecipe)
}
