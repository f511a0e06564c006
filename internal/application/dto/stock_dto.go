package dto

// AddStockRequest body para POST /api/addProductInStock.
type AddStockRequest struct {
	ProductID      int64  `json:"product_id"`
	Quantity       int64  `json:"quantity"`
	ExpirationDate string `json:"expiration_date"` // YYYY-MM-DD
}

// StockResponse salida de un lote de stock.
type StockResponse struct {
	ID             int64            `json:"id"`
	ProductID      int64            `json:"product_id"`
	Quantity       int64            `json:"quantity"`
	ExpirationDate string           `json:"expiration_date"`
	Product        *ProductResponse `json:"product,omitempty"`
}

// AddStockResponse respuesta de POST /api/addProductInStock.
type AddStockResponse struct {
	Message string        `json:"message"`
	Stock   StockResponse `json:"stock"`
}

// StockListResponse respuesta de GET /api/productsInStock.
type StockListResponse struct {
	ProductsInStock []StockResponse `json:"productsInStock"`
}
