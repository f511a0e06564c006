package repository

import "github.com/jhoicas/Recetario-api/internal/domain/entity"

// RecipeRepository define el puerto de lectura para el catálogo de recetas.
type RecipeRepository interface {
	// GetByID devuelve la receta con sus líneas, o nil si no existe.
	GetByID(id int64) (*entity.Recipe, error)
	// ListWithLines devuelve todas las recetas con sus líneas, en orden de catálogo (id ASC).
	ListWithLines() ([]*entity.Recipe, error)
}
