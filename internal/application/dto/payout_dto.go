package dto

import "github.com/shopspring/decimal"

// RegisterPayoutRequest body para POST /api/pagos: material → peso como lo envía
// el formulario (strings; pesos no numéricos valen 0 y la línea se descarta).
type RegisterPayoutRequest struct {
	Weights map[string]string `json:"weights"`
}

// ReceiptLineResponse línea valorizada del recibo.
type ReceiptLineResponse struct {
	Material  string          `json:"material"`
	Weight    decimal.Decimal `json:"weight"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
}

// ReceiptResponse recibo calculado de un pesaje.
type ReceiptResponse struct {
	Actor string                `json:"actor"`
	Lines []ReceiptLineResponse `json:"lines"`
	Total decimal.Decimal       `json:"total"`
}

// RegisterPayoutResponse resultado de registrar un pesaje: el id de transacción
// compartido por todas las líneas y el recibo calculado.
type RegisterPayoutResponse struct {
	TransactionID string          `json:"transaction_id"`
	Receipt       ReceiptResponse `json:"receipt"`
}
