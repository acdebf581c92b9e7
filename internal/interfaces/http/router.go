package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/command"
	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CommandUC *command.UseCase
	QueryUC   *query.UseCase
	ReportUC  *report.UseCase
	JWTSecret string
}

// Router registra las rutas de la API. Todo lo que toca catálogo o ledger
// exige Bearer Token; el colaborador de autenticación externo emite el token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Comandos de productos y stock
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CommandUC)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/stock", productHandler.SetStock)
	products.Post("/:id/adjust", productHandler.AdjustStock)

	// Lecturas derivadas
	inventoryHandler := NewInventoryHandler(deps.QueryUC)
	products.Get("/", inventoryHandler.List)
	products.Get("/:id/transactions", inventoryHandler.History)
	inventory := api.Group("/inventory")
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/stats", inventoryHandler.Stats)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory", reportHandler.Inventory)
}
