package entity

import "github.com/shopspring/decimal"

// ReceiptLine una línea valorizada del recibo: material, peso, precio unitario
// y el monto de la línea.
type ReceiptLine struct {
	Material  string
	Weight    decimal.Decimal
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
}

// Receipt es la vista calculada (no persistida) de un pesaje valorizado contra
// el catálogo. Se puede reconstruir de forma idéntica a partir del mismo par
// (pesos, catálogo): las líneas van ordenadas por material.
type Receipt struct {
	Actor string
	Lines []ReceiptLine
	Total decimal.Decimal
}
