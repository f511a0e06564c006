package repository

import "github.com/jhoicas/Recetario-api/internal/domain/entity"

// ProductRepository define el puerto de lectura para Product (dato de referencia).
type ProductRepository interface {
	GetByID(id int64) (*entity.Product, error)
	// List devuelve todos los productos, más recientes primero (id DESC).
	List() ([]*entity.Product, error)
}
