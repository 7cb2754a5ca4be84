package sheets

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Chatarreria-api/internal/domain/entity"
	"github.com/jhoicas/Chatarreria-api/internal/domain/pricing"
	"github.com/jhoicas/Chatarreria-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre la
// tabla Transacciones del libro.
type TransactionRepo struct {
	wb  *Workbook
	loc *time.Location // zona horaria con la que se formatean y parsean fechas
}

// NewTransactionRepository construye el adaptador de persistencia del log.
func NewTransactionRepository(wb *Workbook, loc *time.Location) *TransactionRepo {
	return &TransactionRepo{wb: wb, loc: loc}
}

// Append agrega una fila por registro, en orden. Si una escritura intermedia
// falla, las filas anteriores del lote permanecen escritas (no hay rollback) y
// se devuelve el error con cuántas alcanzaron a persistirse.
func (r *TransactionRepo) Append(records []entity.TransactionRecord) error {
	for i, rec := range records {
		row := []string{
			rec.TransactionID,
			rec.Date.In(r.loc).Format(entity.DateLayout),
			rec.Actor,
			rec.Material,
			rec.Weight.String(),
			rec.UnitPrice.String(),
			rec.Amount.StringFixed(2),
		}
		if err := r.wb.AppendRow(TableTransactions, row); err != nil {
			return fmt.Errorf("registrar transacción (%d de %d filas escritas): %w", i, len(records), err)
		}
	}
	return nil
}

// List devuelve todas las filas del log en su orden natural. Filas con fecha
// ilegible conservan fecha cero; pesos y montos no numéricos valen 0.
func (r *TransactionRepo) List() ([]entity.TransactionRecord, error) {
	rows, err := r.wb.ReadTable(TableTransactions)
	if err != nil {
		return nil, fmt.Errorf("leer transacciones: %w", err)
	}
	records := make([]entity.TransactionRecord, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // encabezado
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		rec := entity.TransactionRecord{TransactionID: strings.TrimSpace(row[0])}
		if len(row) > 1 {
			if d, err := time.ParseInLocation(entity.DateLayout, strings.TrimSpace(row[1]), r.loc); err == nil {
				rec.Date = d
			}
		}
		if len(row) > 2 {
			rec.Actor = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			rec.Material = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			rec.Weight = pricing.ParseAmount(row[4])
		}
		if len(row) > 5 {
			rec.UnitPrice = pricing.ParseAmount(row[5])
		}
		if len(row) > 6 {
			rec.Amount = pricing.ParseAmount(row[6])
		}
		records = append(records, rec)
	}
	return records, nil
}
