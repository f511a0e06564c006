package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste un nuevo lote de stock. Producto inexistente → domain.ErrNotFound.
func (r *StockRepo) Create(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock (product_id, quantity, expiration_date, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		entry.ProductID, entry.Quantity, entry.ExpirationDate,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// ListAll devuelve todos los lotes con su producto, más recientes primero (id DESC).
func (r *StockRepo) ListAll() ([]repository.StockWithProduct, error) {
	query := `
		SELECT s.id, s.product_id, s.quantity, s.expiration_date, s.created_at, p.id, p.name
		FROM stock s
		JOIN products p ON p.id = s.product_id
		ORDER BY s.id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []repository.StockWithProduct
	for rows.Next() {
		var item repository.StockWithProduct
		if err := rows.Scan(
			&item.Entry.ID, &item.Entry.ProductID, &item.Entry.Quantity,
			&item.Entry.ExpirationDate, &item.Entry.CreatedAt,
			&item.Product.ID, &item.Product.Name,
		); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// AggregateByProduct devuelve la cantidad total por producto (suma de lotes).
func (r *StockRepo) AggregateByProduct() (map[int64]decimal.Decimal, error) {
	query := `SELECT product_id, COALESCE(SUM(quantity), 0) FROM stock GROUP BY product_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("aggregate stock: %w", err)
	}
	defer rows.Close()
	agg := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var productID int64
		var total decimal.Decimal
		if err := rows.Scan(&productID, &total); err != nil {
			return nil, fmt.Errorf("scan aggregate: %w", err)
		}
		agg[productID] = total
	}
	return agg, rows.Err()
}

// ListByProductForUpdate devuelve los lotes de un producto en orden FIFO por
// vencimiento, bloqueando las filas (SELECT FOR UPDATE) para que validaciones
// concurrentes sobre el mismo producto se serialicen.
func (r *StockRepo) ListByProductForUpdate(productID int64) ([]*entity.StockEntry, error) {
	query := `
		SELECT id, product_id, quantity, expiration_date, created_at
		FROM stock WHERE product_id = $1
		ORDER BY expiration_date ASC, id ASC
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("lock stock for update: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Quantity, &e.ExpirationDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// UpdateQuantity fija la cantidad de un lote. El CHECK (quantity >= 0) de la
// tabla rechaza cualquier cantidad negativa.
func (r *StockRepo) UpdateQuantity(entryID int64, quantity decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock SET quantity = $2 WHERE id = $1`,
		entryID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	return nil
}

// TotalByProduct devuelve la cantidad total en stock de un producto.
func (r *StockRepo) TotalByProduct(productID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM stock WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total stock: %w", err)
	}
	return total, nil
}
