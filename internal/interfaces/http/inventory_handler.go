package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// InventoryHandler maneja las lecturas derivadas del inventario (protegido).
// Solo consulta: toda mutación pasa por ProductHandler.
type InventoryHandler struct {
	uc *query.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *query.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario (vistas derivadas)
// @Description  Sin parámetros devuelve el catálogo completo, más reciente
// @Description  primero. q busca por nombre, sku, categoría o alias; filter
// @Description  aplica low_stock, out_of_stock o recent. q tiene prioridad.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Texto de búsqueda"
// @Param        filter  query  string  false  "low_stock | out_of_stock | recent"
// @Success      200  {array}   dto.InventoryViewDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var (
		out []dto.InventoryViewDTO
		err error
	)
	switch {
	case c.Query("q") != "":
		out, err = h.uc.Search(c.Query("q"))
	case c.Query("filter") != "":
		out, err = h.uc.Filter(c.Query("filter"))
	default:
		out, err = h.uc.ListAll()
	}
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filter debe ser low_stock, out_of_stock o recent"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Agregados del inventario para el dashboard
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryStatsDTO
// @Router       /api/inventory/stats [get]
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historia del ledger de un producto
// @Description  Entradas IN/OUT ordenadas por id ascendente. Un producto
// @Description  eliminado tiene historia vacía (referencia débil).
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}  dto.StockTransactionResponse
// @Router       /api/products/{id}/transactions [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.History(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
