package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/internal/application/recipe"
	"github.com/jhoicas/Recetario-api/internal/domain"
)

// RecipeHandler maneja las peticiones HTTP de recetas.
type RecipeHandler struct {
	possible *recipe.PossibleRecipesUseCase
	validate *recipe.ValidateUseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(possible *recipe.PossibleRecipesUseCase, validate *recipe.ValidateUseCase) *RecipeHandler {
	return &RecipeHandler{possible: possible, validate: validate}
}

// GetPossibleRecipes godoc
// @Summary      Listar recetas posibles según el stock disponible
// @Description  Cada producto de la receta se anota con status available/unavailable
//
//	y quantity_in_recipe cuando está disponible. La disponibilidad indica
//	stock positivo, no suficiencia: la validación puede igualmente fallar.
//
// @Tags         recipes
// @Produce      json
// @Success      200  {object}  dto.PossibleRecipesResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/possible-recipes [get]
func (h *RecipeHandler) GetPossibleRecipes(c *fiber.Ctx) error {
	out, err := h.possible.List(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("listar recetas posibles")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// ValidateRecipe godoc
// @Summary      Validar una receta y descontar el stock
// @Description  Descuenta de forma atómica las cantidades requeridas de todos los
//
//	productos de la receta, o ninguna si alguna línea no alcanza.
//
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateRecipeRequest  true  "recipeId"
// @Success      200   {object}  dto.ValidateRecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/validate-recipe [post]
func (h *RecipeHandler) ValidateRecipe(c *fiber.Ctx) error {
	var in dto.ValidateRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RecipeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "recipeId es requerido y debe ser un entero positivo"})
	}
	out, err := h.validate.Validate(c.Context(), in.RecipeID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para preparar la receta"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "receta no encontrada"})
		}
		log.Error().Err(err).Int64("recipe_id", in.RecipeID).Msg("validar receta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
