// Package pricing implementa el cálculo puro de valorización de pesajes
// (servicio de dominio): monto por línea, construcción de recibos y la política
// de parseo numérico de entradas de usuario.
package pricing

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Chatarreria-api/internal/domain/entity"
)

// LineAmount calcula el monto de una línea: round(peso × precioUnitario, 2).
func LineAmount(weight, unitPrice decimal.Decimal) decimal.Decimal {
	return weight.Mul(unitPrice).Round(2)
}

// ParseAmount aplica la política "entrada numérica inválida vale cero": cualquier
// valor no numérico enviado por el usuario (o leído de una celda corrupta) se
// trata como 0 en lugar de rechazarse. Es una política nombrada, no un descuido.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// BuildReceipt valoriza un pesaje contra el catálogo. Determinista e idempotente:
// el mismo par (pesos, catálogo) produce siempre el mismo recibo, con líneas
// ordenadas por material.
//
//   - Líneas con peso ≤ 0 se descartan.
//   - Materiales ausentes del catálogo se valorizan a 0 y se incluyen.
//   - Total = round(Σ montos, 2).
func BuildReceipt(actor string, weights map[string]decimal.Decimal, catalog entity.Catalog) entity.Receipt {
	materials := make([]string, 0, len(weights))
	for m := range weights {
		materials = append(materials, m)
	}
	sort.Strings(materials)

	r := entity.Receipt{Actor: actor, Total: decimal.Zero}
	for _, m := range materials {
		w := weights[m]
		if w.LessThanOrEqual(decimal.Zero) {
			continue
		}
		price := catalog.PriceFor(m)
		amount := LineAmount(w, price)
		r.Lines = append(r.Lines, entity.ReceiptLine{
			Material:  m,
			Weight:    w,
			UnitPrice: price,
			Amount:    amount,
		})
		r.Total = r.Total.Add(amount)
	}
	r.Total = r.Total.Round(2)
	return r
}
