package dto

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductListResponse respuesta de GET /api/products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}
