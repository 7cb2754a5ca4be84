package dto

import "github.com/shopspring/decimal"

// TransactionResponse una fila del log en respuestas.
type TransactionResponse struct {
	TransactionID string          `json:"transaction_id"`
	Date          string          `json:"date"`
	Actor         string          `json:"actor"`
	Material      string          `json:"material"`
	Weight        decimal.Decimal `json:"weight"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Amount        decimal.Decimal `json:"amount"`
}

// HistoryResponse listado del historial de transacciones.
type HistoryResponse struct {
	Scope        string                `json:"scope"` // "todas" | "hoy"
	Transactions []TransactionResponse `json:"transactions"`
}
