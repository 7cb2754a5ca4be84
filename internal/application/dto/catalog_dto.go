package dto

import "github.com/shopspring/decimal"

// SavePricesRequest body para PUT /api/precios: material → precio como lo envía
// el formulario (strings; valores no numéricos valen 0, negativos se rechazan).
type SavePricesRequest struct {
	Prices map[string]string `json:"prices"`
}

// PriceEntryResponse una entrada del catálogo en respuestas.
type PriceEntryResponse struct {
	Material  string          `json:"material"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CatalogResponse catálogo completo, ordenado por material.
type CatalogResponse struct {
	Prices []PriceEntryResponse `json:"prices"`
}
