package payout

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Chatarreria-api/internal/application/catalog"
	"github.com/jhoicas/Chatarreria-api/internal/application/dto"
	"github.com/jhoicas/Chatarreria-api/internal/domain"
	"github.com/jhoicas/Chatarreria-api/internal/domain/entity"
	"github.com/jhoicas/Chatarreria-api/internal/domain/pricing"
	"github.com/jhoicas/Chatarreria-api/internal/domain/repository"
	"github.com/jhoicas/Chatarreria-api/pkg/logger"
)

// PayoutUseCase casos de uso del pesaje: registrar una transacción y calcular
// (o recalcular) el recibo.
type PayoutUseCase struct {
	catalogUC *catalog.CatalogUseCase
	txRepo    repository.TransactionRepository
	pdfGen    ReceiptPDFGenerator
	loc       *time.Location
	log       *logger.Logger
}

// NewPayoutUseCase construye el caso de uso de pesajes.
func NewPayoutUseCase(
	catalogUC *catalog.CatalogUseCase,
	txRepo repository.TransactionRepository,
	pdfGen ReceiptPDFGenerator,
	loc *time.Location,
	log *logger.Logger,
) *PayoutUseCase {
	return &PayoutUseCase{catalogUC: catalogUC, txRepo: txRepo, pdfGen: pdfGen, loc: loc, log: log}
}

// parseWeights aplica la política de parseo a los pesos del formulario.
// Un peso no numérico vale 0, con lo que la línea queda descartada más adelante
// (peso ≤ 0 nunca se persiste ni se muestra).
func parseWeights(raw map[string]string) map[string]decimal.Decimal {
	weights := make(map[string]decimal.Decimal, len(raw))
	for material, value := range raw {
		material = strings.TrimSpace(material)
		if material == "" {
			continue
		}
		weights[material] = pricing.ParseAmount(value)
	}
	return weights
}

// BuildReceipt valoriza un pesaje contra el catálogo vigente, sin persistir
// nada. Sirve para previsualizar y para re-mostrar el recibo del último envío
// sin releer el log de transacciones.
func (uc *PayoutUseCase) BuildReceipt(actor string, rawWeights map[string]string) (entity.Receipt, error) {
	if strings.TrimSpace(actor) == "" {
		return entity.Receipt{}, domain.ErrInvalidInput
	}
	return pricing.BuildReceipt(actor, parseWeights(rawWeights), uc.catalogUC.GetCatalog()), nil
}

// RegisterPayout registra un pesaje: descarta líneas con peso ≤ 0, valoriza
// contra el catálogo vigente (material desconocido vale 0) y persiste una fila
// por línea, todas con el mismo id de transacción y la misma marca de tiempo.
//
// No hay commit atómico multi-fila: si el almacenamiento falla a mitad del
// lote, las filas ya escritas permanecen y el error se reporta igual.
func (uc *PayoutUseCase) RegisterPayout(actor string, rawWeights map[string]string) (string, entity.Receipt, error) {
	if strings.TrimSpace(actor) == "" {
		return "", entity.Receipt{}, domain.ErrInvalidInput
	}

	receipt := pricing.BuildReceipt(actor, parseWeights(rawWeights), uc.catalogUC.GetCatalog())
	if len(receipt.Lines) == 0 {
		return "", entity.Receipt{}, domain.ErrEmptyPayout
	}

	txID := uuid.New().String()
	now := time.Now().In(uc.loc)

	records := make([]entity.TransactionRecord, 0, len(receipt.Lines))
	for _, line := range receipt.Lines {
		records = append(records, entity.TransactionRecord{
			TransactionID: txID,
			Date:          now,
			Actor:         actor,
			Material:      line.Material,
			Weight:        line.Weight,
			UnitPrice:     line.UnitPrice,
			Amount:        line.Amount,
		})
	}
	if err := uc.txRepo.Append(records); err != nil {
		uc.log.Error().Err(err).Str("transaction_id", txID).Str("actor", actor).Msg("registrar pesaje")
		return "", entity.Receipt{}, err
	}

	uc.log.Info().
		Str("transaction_id", txID).
		Str("actor", actor).
		Int("lineas", len(records)).
		Str("total", receipt.Total.StringFixed(2)).
		Msg("pesaje registrado")
	return txID, receipt, nil
}

// ReceiptPDF calcula el recibo y lo renderiza como PDF.
func (uc *PayoutUseCase) ReceiptPDF(actor string, rawWeights map[string]string) ([]byte, error) {
	receipt, err := uc.BuildReceipt(actor, rawWeights)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateReceiptPDF(receipt, time.Now().In(uc.loc))
}

// ToReceiptResponse mapea un recibo a su DTO.
func ToReceiptResponse(r entity.Receipt) dto.ReceiptResponse {
	out := dto.ReceiptResponse{Actor: r.Actor, Total: r.Total, Lines: make([]dto.ReceiptLineResponse, 0, len(r.Lines))}
	for _, line := range r.Lines {
		out.Lines = append(out.Lines, dto.ReceiptLineResponse{
			Material:  line.Material,
			Weight:    line.Weight,
			UnitPrice: line.UnitPrice,
			Amount:    line.Amount,
		})
	}
	return out
}
