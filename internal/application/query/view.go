package query

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// toInventoryView proyecta un producto a su vista de inventario. Aplica los
// fallbacks de presentación (proveedor, ícono, etiqueta de fecha solo-día);
// la proyección se recalcula en cada lectura, nunca se persiste.
func toInventoryView(p *entity.Product) dto.InventoryViewDTO {
	supplier := p.Supplier
	if supplier == "" {
		supplier = entity.DefaultSupplier
	}
	image := p.Image
	if image == "" {
		image = entity.DefaultImage
	}
	return dto.InventoryViewDTO{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Category:     p.Category,
		Supplier:     supplier,
		Image:        image,
		Price:        p.Price,
		Cost:         p.Cost,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		LowStock:     p.IsLowStock(),
		OutOfStock:   p.IsOutOfStock(),
		UpdatedLabel: p.UpdatedAt.Format("2006-01-02"),
		UpdatedAt:    p.UpdatedAt,
	}
}

func toInventoryViews(list []*entity.Product) []dto.InventoryViewDTO {
	views := make([]dto.InventoryViewDTO, 0, len(list))
	for _, p := range list {
		views = append(views, toInventoryView(p))
	}
	return views
}
