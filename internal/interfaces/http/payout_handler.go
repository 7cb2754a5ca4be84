package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Chatarreria-api/internal/application/dto"
	"github.com/jhoicas/Chatarreria-api/internal/application/payout"
	"github.com/jhoicas/Chatarreria-api/internal/domain"
)

// PayoutHandler maneja el registro de pesajes y el cálculo de recibos.
type PayoutHandler struct {
	uc *payout.PayoutUseCase
}

// NewPayoutHandler construye el handler de pesajes.
func NewPayoutHandler(uc *payout.PayoutUseCase) *PayoutHandler {
	return &PayoutHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar un pesaje
// @Description  Valoriza los pesos contra el catálogo vigente y persiste una
// @Description  fila por material con peso positivo, todas con el mismo id de
// @Description  transacción. Devuelve el recibo calculado.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPayoutRequest  true  "material → peso"
// @Success      201   {object}  dto.RegisterPayoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pagos [post]
func (h *PayoutHandler) Register(c *fiber.Ctx) error {
	actor := GetActor(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterPayoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	txID, receipt, err := h.uc.RegisterPayout(actor, in.Weights)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPayout) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_PAYOUT", Message: "ninguna línea tiene peso positivo"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterPayoutResponse{
		TransactionID: txID,
		Receipt:       payout.ToReceiptResponse(receipt),
	})
}

// Receipt godoc
// @Summary      Calcular un recibo sin registrar
// @Description  Recalcula el recibo de un pesaje contra el catálogo vigente.
// @Description  Puro: el mismo par (pesos, catálogo) produce el mismo recibo.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPayoutRequest  true  "material → peso"
// @Success      200   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pagos/recibo [post]
func (h *PayoutHandler) Receipt(c *fiber.Ctx) error {
	actor := GetActor(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterPayoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	receipt, err := h.uc.BuildReceipt(actor, in.Weights)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(payout.ToReceiptResponse(receipt))
}

// ReceiptPDF godoc
// @Summary      Recibo en PDF
// @Tags         pagos
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.RegisterPayoutRequest  true  "material → peso"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pagos/recibo/pdf [post]
func (h *PayoutHandler) ReceiptPDF(c *fiber.Ctx) error {
	actor := GetActor(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterPayoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdfBytes, err := h.uc.ReceiptPDF(actor, in.Weights)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo.pdf"`)
	return c.Send(pdfBytes)
}
