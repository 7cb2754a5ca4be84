package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Chatarreria-api/internal/application/dto"
	"github.com/jhoicas/Chatarreria-api/internal/domain"
	"github.com/jhoicas/Chatarreria-api/internal/domain/entity"
	"github.com/jhoicas/Chatarreria-api/internal/domain/pricing"
	"github.com/jhoicas/Chatarreria-api/internal/domain/repository"
	"github.com/jhoicas/Chatarreria-api/pkg/logger"
)

// CatalogUseCase casos de uso del catálogo de precios: consulta degradada y
// edición por reemplazo total.
type CatalogUseCase struct {
	repo repository.PriceCatalogRepository
	log  *logger.Logger
}

// NewCatalogUseCase construye el caso de uso del catálogo.
func NewCatalogUseCase(repo repository.PriceCatalogRepository, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, log: log}
}

// GetCatalog devuelve el catálogo vigente. Ante cualquier fallo del
// almacenamiento degrada a un catálogo vacío en lugar de propagar el error:
// los consumidores deben tratarlo como "sin precios disponibles" y los montos
// calculados serán 0, pero la petición no falla.
func (uc *CatalogUseCase) GetCatalog() entity.Catalog {
	catalog, err := uc.repo.GetAll()
	if err != nil {
		uc.log.Warn().Err(err).Msg("catálogo no disponible, se usa catálogo vacío")
		return entity.Catalog{}
	}
	return catalog
}

// SaveCatalog sobrescribe la tabla de precios con exactamente las entradas
// dadas (reemplazo total: lo ausente se elimina). Quien quiera una edición
// parcial debe leer el catálogo, hacer el merge y pasar el resultado completo.
//
// Los precios llegan como strings del formulario: valores no numéricos valen 0
// (política de parseo), negativos se rechazan con ErrNegativePrice.
func (uc *CatalogUseCase) SaveCatalog(prices map[string]string) (entity.Catalog, error) {
	catalog := entity.Catalog{}
	for name, raw := range prices {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		price := pricing.ParseAmount(raw)
		if price.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNegativePrice, name)
		}
		catalog[name] = price
	}
	if err := uc.repo.ReplaceAll(catalog); err != nil {
		uc.log.Error().Err(err).Int("entradas", len(catalog)).Msg("guardar catálogo")
		return nil, err
	}
	uc.log.Info().Int("entradas", len(catalog)).Msg("catálogo reemplazado")
	return catalog, nil
}

// ToResponse mapea un catálogo a su DTO, con entradas ordenadas por material.
func ToResponse(catalog entity.Catalog) dto.CatalogResponse {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	out := dto.CatalogResponse{Prices: make([]dto.PriceEntryResponse, 0, len(names))}
	for _, name := range names {
		out.Prices = append(out.Prices, dto.PriceEntryResponse{Material: name, UnitPrice: catalog[name]})
	}
	return out
}
