// Package report genera el reporte de inventario en PDF a partir de las vistas
// del motor de consultas. Solo lectura; no toca catálogo ni ledger.
package report

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/query"
)

// InventoryReportGenerator puerto del generador PDF (implementado en
// infrastructure/pdf con Maroto v2).
type InventoryReportGenerator interface {
	GenerateInventoryReport(
		ctx context.Context,
		items []dto.InventoryViewDTO,
		stats dto.InventoryStatsDTO,
		generatedAt time.Time,
	) ([]byte, error)
}

// UseCase arma el snapshot (catálogo + agregados) y delega el render al generador.
type UseCase struct {
	queries   *query.UseCase
	generator InventoryReportGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(queries *query.UseCase, generator InventoryReportGenerator) *UseCase {
	return &UseCase{queries: queries, generator: generator}
}

// Generate produce los bytes del PDF del inventario vigente.
func (uc *UseCase) Generate(ctx context.Context) ([]byte, error) {
	items, err := uc.queries.ListAll()
	if err != nil {
		return nil, err
	}
	stats, err := uc.queries.Stats()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInventoryReport(ctx, items, *stats, time.Now())
}
