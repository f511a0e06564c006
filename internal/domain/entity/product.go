package entity

import "time"

// Product representa un producto del catálogo (dato de referencia, solo lectura
// desde el núcleo de recetas; el stock vive por lotes en StockEntry).
type Product struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
