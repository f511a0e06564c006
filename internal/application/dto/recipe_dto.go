package dto

// RecipeProductDTO línea de una receta anotada con disponibilidad.
// QuantityInRecipe solo aparece cuando el producto está disponible.
type RecipeProductDTO struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Status           string `json:"status"` // available | unavailable
	QuantityInRecipe int    `json:"quantity_in_recipe,omitempty"`
}

// PossibleRecipeDTO receta con sus productos anotados.
type PossibleRecipeDTO struct {
	ID       int64              `json:"id"`
	Name     string             `json:"name"`
	Products []RecipeProductDTO `json:"products"`
}

// PossibleRecipesResponse respuesta de GET /api/possible-recipes.
type PossibleRecipesResponse struct {
	PossibleRecipes []PossibleRecipeDTO `json:"possibleRecipes"`
}

// ValidateRecipeRequest body para POST /api/validate-recipe.
type ValidateRecipeRequest struct {
	RecipeID int64 `json:"recipeId"`
}

// UpdatedProductDTO producto con su cantidad final en stock tras validar la receta.
type UpdatedProductDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	QuantityInStock int64  `json:"quantity_in_stock"`
}

// ValidateRecipeResponse respuesta de POST /api/validate-recipe.
type ValidateRecipeResponse struct {
	Message                   string              `json:"message"`
	UpdatedAssociatedProducts []UpdatedProductDTO `json:"updatedAssociatedProducts"`
}
