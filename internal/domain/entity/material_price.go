package entity

import "github.com/shopspring/decimal"

// MaterialPrice representa una entrada del catálogo de precios: un material y su
// precio por unidad de peso. El nombre es la clave única del catálogo.
type MaterialPrice struct {
	Name      string
	UnitPrice decimal.Decimal // no negativo
}

// Catalog es el catálogo vigente material → precio unitario. Un catálogo vacío
// significa "sin precios disponibles", no "todo vale cero": los consumidores lo
// tratan como degradación y siguen operando con monto 0.
type Catalog map[string]decimal.Decimal

// PriceFor devuelve el precio del material, o 0 si no está en el catálogo.
func (c Catalog) PriceFor(material string) decimal.Decimal {
	if p, ok := c[material]; ok {
		return p
	}
	return decimal.Zero
}
