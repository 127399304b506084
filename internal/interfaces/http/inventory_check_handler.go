package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/avillareal/farmastock-api/internal/application/dto"
	"github.com/avillareal/farmastock-api/internal/application/inventorycheck"
	"github.com/avillareal/farmastock-api/internal/domain"
	"github.com/avillareal/farmastock-api/internal/domain/entity"
)

// InventoryCheckHandler maneja las peticiones HTTP de órdenes de conteo (protegido).
type InventoryCheckHandler struct {
	uc *inventorycheck.CheckOrderUseCase
}

// NewInventoryCheckHandler construye el handler.
func NewInventoryCheckHandler(uc *inventorycheck.CheckOrderUseCase) *InventoryCheckHandler {
	return &InventoryCheckHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de conteo de inventario
// @Description  Crea la orden y siembra una inspección draft por cada ubicación ocupada.
// @Tags         inventory-checks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCheckOrderRequest  true  "manager_id, check_date, notes"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/inventory-checks [post]
func (h *InventoryCheckHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token inválido"))
	}
	var in dto.CreateCheckOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.CreateOrder(c.Context(), userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("manager_id es requerido"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar órdenes de conteo
// @Tags         inventory-checks
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | processing | completed | cancelled"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.Response
// @Router       /api/inventory-checks [get]
func (h *InventoryCheckHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener orden de conteo con sus inspecciones
// @Tags         inventory-checks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/inventory-checks/{id} [get]
func (h *InventoryCheckHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id es requerido"))
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("orden no encontrada"))
	}
	return c.JSON(dto.OK(out))
}

// UpdateStatus godoc
// @Summary      Transicionar el estado de una orden de conteo
// @Description  Status completed ejecuta la compuerta de completitud y la
//               reconciliación atómica de paquetes y ubicaciones. Si quedan
//               inspecciones sin verificar responde 400 con la cantidad pendiente.
// @Tags         inventory-checks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "status destino"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/inventory-checks/{id}/status [put]
func (h *InventoryCheckHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id es requerido"))
	}
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.UpdateStatus(c.Context(), id, in.Status)
	if err != nil {
		var incomplete *domain.IncompleteInspectionsError
		switch {
		case errors.As(err, &incomplete):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(incomplete.Error()))
		case errors.Is(err, domain.ErrNoInspections):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("orden no encontrada"))
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("transición de estado inválida"))
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("status debe ser uno de: " +
				entity.OrderStatusProcessing + ", " + entity.OrderStatusCompleted + ", " + entity.OrderStatusCancelled))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
		}
	}
	return c.JSON(dto.OK(out))
}
