package sheets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Chatarreria-api/internal/domain/entity"
	"github.com/jhoicas/Chatarreria-api/internal/domain/pricing"
	"github.com/jhoicas/Chatarreria-api/internal/domain/repository"
)

var _ repository.PriceCatalogRepository = (*PriceRepo)(nil)

// PriceRepo implementación del puerto PriceCatalogRepository sobre la tabla
// Precios del libro.
type PriceRepo struct {
	wb *Workbook
}

// NewPriceRepository construye el adaptador de persistencia del catálogo.
func NewPriceRepository(wb *Workbook) *PriceRepo {
	return &PriceRepo{wb: wb}
}

// GetAll lee la tabla completa. Celdas de precio no numéricas valen 0 (política
// de parseo compartida con la entrada de usuario). Filas sin material se omiten.
func (r *PriceRepo) GetAll() (entity.Catalog, error) {
	rows, err := r.wb.ReadTable(TablePrices)
	if err != nil {
		return nil, fmt.Errorf("leer catálogo: %w", err)
	}
	catalog := entity.Catalog{}
	for i, row := range rows {
		if i == 0 {
			continue // encabezado
		}
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		price := ""
		if len(row) > 1 {
			price = row[1]
		}
		catalog[name] = pricing.ParseAmount(price)
	}
	return catalog, nil
}

// ReplaceAll sobrescribe la tabla de precios con exactamente las entradas dadas.
// Las filas se escriben ordenadas por material para que el libro sea estable
// entre guardados idénticos.
func (r *PriceRepo) ReplaceAll(catalog entity.Catalog) error {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, catalog[name].String()})
	}
	if err := r.wb.OverwriteTable(TablePrices, HeaderPrices, rows); err != nil {
		return fmt.Errorf("guardar catálogo: %w", err)
	}
	return nil
}
