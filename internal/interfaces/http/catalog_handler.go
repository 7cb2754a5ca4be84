package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Chatarreria-api/internal/application/catalog"
	"github.com/jhoicas/Chatarreria-api/internal/application/dto"
	"github.com/jhoicas/Chatarreria-api/internal/domain"
)

// CatalogHandler maneja la consulta y edición del catálogo de precios.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Get godoc
// @Summary      Catálogo de precios vigente
// @Tags         precios
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/precios [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	// Un catálogo vacío es una respuesta válida: "sin precios disponibles".
	return c.JSON(catalog.ToResponse(h.uc.GetCatalog()))
}

// Save godoc
// @Summary      Editar el catálogo de precios (solo admin)
// @Description  Por defecto hace merge sobre el catálogo actual (leer-mezclar-guardar
// @Description  explícito); con ?reemplazar=true sobrescribe la tabla con exactamente
// @Description  las entradas enviadas, eliminando lo ausente.
// @Tags         precios
// @Accept       json
// @Produce      json
// @Param        reemplazar  query  bool  false  "reemplazo total en vez de merge"
// @Param        body  body  dto.SavePricesRequest  true  "material → precio"
// @Success      200   {object}  dto.CatalogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/precios [put]
func (h *CatalogHandler) Save(c *fiber.Ctx) error {
	var in dto.SavePricesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Prices) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "prices no puede estar vacío"})
	}

	prices := in.Prices
	if !c.QueryBool("reemplazar", false) {
		// SaveCatalog es reemplazo total: el merge se hace aquí, en el borde,
		// partiendo del catálogo vigente.
		merged := make(map[string]string)
		for name, price := range h.uc.GetCatalog() {
			merged[name] = price.String()
		}
		for name, price := range prices {
			merged[name] = price
		}
		prices = merged
	}

	saved, err := h.uc.SaveCatalog(prices)
	if err != nil {
		if errors.Is(err, domain.ErrNegativePrice) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(catalog.ToResponse(saved))
}
