package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord representa una línea persistida del log de transacciones:
// un material de un pesaje de un empleado, con el precio vigente al momento.
// Las líneas de un mismo pesaje comparten TransactionID y Date. Una vez escrita
// la fila es inmutable (el log es append-only).
type TransactionRecord struct {
	TransactionID string
	Date          time.Time
	Actor         string
	Material      string
	Weight        decimal.Decimal
	UnitPrice     decimal.Decimal // precio al momento del registro
	Amount        decimal.Decimal // round(Weight × UnitPrice, 2)
}

// DateLayout es el formato con el que se almacena Date en la hoja de cálculo.
// El filtro "hoy" compara el prefijo de fecha (los primeros 10 caracteres).
const DateLayout = "2006-01-02 15:04:05"
