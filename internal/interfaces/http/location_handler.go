package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/avillareal/farmastock-api/internal/application/dto"
	"github.com/avillareal/farmastock-api/internal/application/inventorycheck"
	"github.com/avillareal/farmastock-api/internal/domain"
)

// LocationHandler expone el rastro de auditoría de ubicaciones (protegido, solo lectura).
type LocationHandler struct {
	uc *inventorycheck.AuditUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *inventorycheck.AuditUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Logs godoc
// @Summary      Auditoría de cambios de una ubicación
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la ubicación"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.Response
// @Failure      404     {object}  dto.Response
// @Router       /api/locations/{id}/logs [get]
func (h *LocationHandler) Logs(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.LocationLogs(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("ubicación no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.OK(out))
}
