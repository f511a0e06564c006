package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación del puerto RecipeRepository sobre PostgreSQL (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador del catálogo de recetas. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// GetByID obtiene una receta con sus líneas. Devuelve nil si no existe.
func (r *RecipeRepo) GetByID(id int64) (*entity.Recipe, error) {
	var rec entity.Recipe
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM recipes WHERE id = $1`, id,
	).Scan(&rec.ID, &rec.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	rows, err := r.q.Query(context.Background(), `
		SELECT rp.product_id, p.name, rp.quantity
		FROM recipe_products rp
		JOIN products p ON p.id = rp.product_id
		WHERE rp.recipe_id = $1
		ORDER BY rp.product_id`, id)
	if err != nil {
		return nil, fmt.Errorf("get recipe lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.RecipeLine
		if err := rows.Scan(&line.ProductID, &line.ProductName, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		if line.Quantity <= 0 {
			line.Quantity = 1 // default documentado del pivot
		}
		rec.Lines = append(rec.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListWithLines devuelve todas las recetas con sus líneas, en orden de catálogo (id ASC).
func (r *RecipeRepo) ListWithLines() ([]*entity.Recipe, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name FROM recipes ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Recipe
	byID := make(map[int64]*entity.Recipe)
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.Name); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &rec)
		byID[rec.ID] = &rec
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lineRows, err := r.q.Query(context.Background(), `
		SELECT rp.recipe_id, rp.product_id, p.name, rp.quantity
		FROM recipe_products rp
		JOIN products p ON p.id = rp.product_id
		ORDER BY rp.recipe_id, rp.product_id`)
	if err != nil {
		return nil, fmt.Errorf("list recipe lines: %w", err)
	}
	defer lineRows.Close()
	for lineRows.Next() {
		var recipeID int64
		var line entity.RecipeLine
		if err := lineRows.Scan(&recipeID, &line.ProductID, &line.ProductName, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		if line.Quantity <= 0 {
			line.Quantity = 1
		}
		if rec, ok := byID[recipeID]; ok {
			rec.Lines = append(rec.Lines, line)
		}
	}
	return list, lineRows.Err()
}
