package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/avillareal/farmastock-api/internal/application/dto"
	"github.com/avillareal/farmastock-api/internal/application/inventorycheck"
	"github.com/avillareal/farmastock-api/internal/domain"
)

// InspectionHandler maneja las peticiones HTTP de inspecciones (protegido).
type InspectionHandler struct {
	uc *inventorycheck.InspectionUseCase
}

// NewInspectionHandler construye el handler.
func NewInspectionHandler(uc *inventorycheck.InspectionUseCase) *InspectionHandler {
	return &InspectionHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener inspección con su check list
// @Tags         inspections
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la inspección"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/inspections/{id} [get]
func (h *InspectionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("inspección no encontrada"))
	}
	return c.JSON(dto.OK(out))
}

// SubmitCounts godoc
// @Summary      Registrar cantidades contadas
// @Description  La clasificación valid/over_expected/under_expected se deriva
//               en servidor comparando contra la cantidad esperada.
// @Tags         inspections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la inspección"
// @Param        body  body  dto.SubmitCountsRequest  true  "conteos por paquete"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/inspections/{id}/items [put]
func (h *InspectionHandler) SubmitCounts(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token inválido"))
	}
	var in dto.SubmitCountsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("items no puede estar vacío"))
	}
	out, err := h.uc.SubmitCounts(userID, c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("inspección o paquete no encontrado"))
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("la inspección ya fue verificada"))
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("conteos inválidos"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
		}
	}
	return c.JSON(dto.OK(out))
}

// UpdateStatus godoc
// @Summary      Transicionar el estado de una inspección
// @Description  draft -> checking -> checked; checked es terminal.
// @Tags         inspections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la inspección"
// @Param        body  body  dto.UpdateInspectionStatusRequest  true  "status destino"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/inspections/{id}/status [put]
func (h *InspectionHandler) UpdateStatus(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token inválido"))
	}
	var in dto.UpdateInspectionStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.UpdateStatus(userID, c.Params("id"), in.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("inspección no encontrada"))
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("transición de estado inválida"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
		}
	}
	return c.JSON(dto.OK(out))
}

// CountSheet godoc
// @Summary      Hoja de conteo en PDF
// @Tags         inspections
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la inspección"
// @Success      200 {file}    binary
// @Failure      404 {object}  dto.Response
// @Router       /api/inspections/{id}/sheet [get]
func (h *InspectionHandler) CountSheet(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.CountSheetPDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("inspección no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="hoja-conteo.pdf"`)
	return c.Send(pdfBytes)
}
