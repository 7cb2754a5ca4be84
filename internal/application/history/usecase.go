package history

import (
	"time"

	"github.com/jhoicas/Chatarreria-api/internal/application/dto"
	"github.com/jhoicas/Chatarreria-api/internal/domain/entity"
	"github.com/jhoicas/Chatarreria-api/internal/domain/repository"
)

// Scope alcance del listado del historial.
type Scope string

const (
	ScopeAll   Scope = "todas"
	ScopeToday Scope = "hoy"
)

// HistoryUseCase lectura del historial de transacciones.
type HistoryUseCase struct {
	txRepo repository.TransactionRepository
	loc    *time.Location
}

// NewHistoryUseCase construye el lector del historial. loc es la zona horaria
// fija de la aplicación: "hoy" siempre se evalúa ahí, sin importar dónde corra
// el proceso ni desde dónde consulte el administrador.
func NewHistoryUseCase(txRepo repository.TransactionRepository, loc *time.Location) *HistoryUseCase {
	return &HistoryUseCase{txRepo: txRepo, loc: loc}
}

// List devuelve las transacciones en su orden natural de inserción. Con
// ScopeToday filtra por coincidencia del componente de fecha (prefijo
// YYYY-MM-DD de la cadena almacenada) contra la fecha actual en la zona
// configurada; ScopeToday es siempre un subconjunto de ScopeAll.
func (uc *HistoryUseCase) List(scope Scope) ([]entity.TransactionRecord, error) {
	records, err := uc.txRepo.List()
	if err != nil {
		return nil, err
	}
	if scope != ScopeToday {
		return records, nil
	}

	today := time.Now().In(uc.loc).Format("2006-01-02")
	filtered := make([]entity.TransactionRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date.In(uc.loc).Format("2006-01-02") == today {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// ToResponse mapea los registros al DTO del historial.
func ToResponse(scope Scope, records []entity.TransactionRecord, loc *time.Location) dto.HistoryResponse {
	out := dto.HistoryResponse{Scope: string(scope), Transactions: make([]dto.TransactionResponse, 0, len(records))}
	for _, rec := range records {
		out.Transactions = append(out.Transactions, dto.TransactionResponse{
			TransactionID: rec.TransactionID,
			Date:          rec.Date.In(loc).Format(entity.DateLayout),
			Actor:         rec.Actor,
			Material:      rec.Material,
			Weight:        rec.Weight,
			UnitPrice:     rec.UnitPrice,
			Amount:        rec.Amount,
		})
	}
	return out
}
