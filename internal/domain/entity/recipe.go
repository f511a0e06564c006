package entity

// RecipeLine línea de la lista de materiales (pivot recipe_products):
// producto requerido y cantidad necesaria para preparar una instancia de la receta.
// Quantity por defecto es 1 si la fila no lo especifica.
type RecipeLine struct {
	ProductID   int64
	ProductName string
	Quantity    int
}

// Recipe representa una receta con sus líneas de productos requeridos.
// Dato de referencia: este núcleo nunca la modifica.
type Recipe struct {
	ID    int64
	Name  string
	Lines []RecipeLine
}
