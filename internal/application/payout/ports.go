package payout

import (
	"time"

	"github.com/jhoicas/Chatarreria-api/internal/domain/entity"
)

// ReceiptPDFGenerator puerto de generación del recibo en PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(receipt entity.Receipt, issuedAt time.Time) ([]byte, error)
}
