// seed puebla la base con datos de desarrollo: productos, recetas con sus
// líneas y stock inicial. Idempotente: se puede ejecutar varias veces.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Recetario-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Recetario-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	statements := []string{
		`INSERT INTO products (id, name) VALUES
			(1, 'Huevos'), (2, 'Leche'), (3, 'Pan'), (4, 'Queso')
		 ON CONFLICT (id) DO NOTHING`,
		`INSERT INTO recipes (id, name) VALUES
			(1, 'Tortilla'), (2, 'Tostada'), (3, 'Tostada con queso')
		 ON CONFLICT (id) DO NOTHING`,
		`INSERT INTO recipe_products (recipe_id, product_id, quantity) VALUES
			(1, 1, 2), (1, 2, 1),
			(2, 3, 1),
			(3, 3, 1), (3, 4, 1)
		 ON CONFLICT (recipe_id, product_id) DO NOTHING`,
		`INSERT INTO stock (product_id, quantity, expiration_date)
		 SELECT v.product_id, v.quantity, v.expiration_date
		 FROM (VALUES
			(1::bigint, 5::numeric, current_date + interval '20 days'),
			(2::bigint, 0::numeric, current_date + interval '7 days'),
			(3::bigint, 3::numeric, current_date + interval '3 days')
		 ) AS v (product_id, quantity, expiration_date)
		 WHERE NOT EXISTS (SELECT 1 FROM stock)`,
		`SELECT setval('products_id_seq', (SELECT MAX(id) FROM products))`,
		`SELECT setval('recipes_id_seq', (SELECT MAX(id) FROM recipes))`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			fmt.Fprintf(os.Stderr, "seed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("seed completado")
}
