package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avillareal/farmastock-api/internal/application/inventorycheck"
	"github.com/avillareal/farmastock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CheckOrderUC *inventorycheck.CheckOrderUseCase
	InspectionUC *inventorycheck.InspectionUseCase
	AuditUC      *inventorycheck.AuditUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Todas requieren Bearer Token; la
// creación de órdenes es de supervisores y la ejecución del conteo (incluida
// la reconciliación vía status=completed) es del bodeguero.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	supervisor := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)
	bodeguero := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)

	// Órdenes de conteo
	checks := api.Group("/inventory-checks")
	checkHandler := NewInventoryCheckHandler(deps.CheckOrderUC)
	checks.Post("/", supervisor, checkHandler.Create)
	checks.Get("/", checkHandler.List)
	checks.Get("/:id", checkHandler.GetByID)
	checks.Put("/:id/status", bodeguero, checkHandler.UpdateStatus)

	// Inspecciones (hojas de conteo)
	inspections := api.Group("/inspections")
	inspectionHandler := NewInspectionHandler(deps.InspectionUC)
	inspections.Get("/:id", inspectionHandler.GetByID)
	inspections.Get("/:id/sheet", inspectionHandler.CountSheet)
	inspections.Put("/:id/items", bodeguero, inspectionHandler.SubmitCounts)
	inspections.Put("/:id/status", bodeguero, inspectionHandler.UpdateStatus)

	// Auditoría de ubicaciones (solo lectura)
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.AuditUC)
	locations.Get("/:id/logs", locationHandler.Logs)
}
