package query_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble en memoria del catálogo con resultados precalculados por vista. Las
// consultas reales viven en SQL; aquí solo se verifica la orquestación y la
// proyección del motor de consultas.
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	all        []*entity.Product
	search     []*entity.Product
	lowStock   []*entity.Product
	outOfStock []*entity.Product
	recent     []*entity.Product

	searchedText string
	recentSince  time.Time

	countAll   int64
	countLow   int64
	countOut   int64
	totalValue decimal.Decimal
}

func (s *stubProductRepo) Create(*entity.Product) error                  { return nil }
func (s *stubProductRepo) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (s *stubProductRepo) GetBySKU(string) (*entity.Product, error)      { return nil, nil }
func (s *stubProductRepo) GetByIDForUpdate(string) (*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) Update(*entity.Product) error                  { return nil }
func (s *stubProductRepo) UpdateStock(string, int64, time.Time) error    { return nil }
func (s *stubProductRepo) Touch(string, time.Time) error                 { return nil }
func (s *stubProductRepo) Delete(string) error                           { return nil }

func (s *stubProductRepo) List() ([]*entity.Product, error) { return s.all, nil }

func (s *stubProductRepo) Search(text string) ([]*entity.Product, error) {
	s.searchedText = text
	return s.search, nil
}

func (s *stubProductRepo) ListLowStock() ([]*entity.Product, error)   { return s.lowStock, nil }
func (s *stubProductRepo) ListOutOfStock() ([]*entity.Product, error) { return s.outOfStock, nil }

func (s *stubProductRepo) ListRecent(since time.Time) ([]*entity.Product, error) {
	s.recentSince = since
	return s.recent, nil
}

func (s *stubProductRepo) CountAll() (int64, error)        { return s.countAll, nil }
func (s *stubProductRepo) CountLowStock() (int64, error)   { return s.countLow, nil }
func (s *stubProductRepo) CountOutOfStock() (int64, error) { return s.countOut, nil }
func (s *stubProductRepo) TotalValue() (decimal.Decimal, error) {
	return s.totalValue, nil
}

type stubLedgerRepo struct {
	byProduct map[string][]*entity.StockTransaction
}

func (s *stubLedgerRepo) Create(*entity.StockTransaction) error { return nil }

func (s *stubLedgerRepo) ListByProduct(productID string) ([]*entity.StockTransaction, error) {
	return s.byProduct[productID], nil
}

func (s *stubLedgerRepo) DeleteByProduct(string) error { return nil }

var (
	_ repository.ProductRepository          = (*stubProductRepo)(nil)
	_ repository.StockTransactionRepository = (*stubLedgerRepo)(nil)
)

func sampleProduct(id string) *entity.Product {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	return &entity.Product{
		ID: id, SKU: "SKU-" + id, Name: "Producto " + id,
		Category: "Bebidas", Supplier: "Distribuidora Sur", Image: "water-outline",
		Price: 8000, Cost: 6000, Stock: 20, MinStock: 10,
		CreatedAt: now, UpdatedAt: now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de proyección — fallbacks de presentación
// ──────────────────────────────────────────────────────────────────────────────

func TestListAll_ProyectaConFallbacks(t *testing.T) {
	p := sampleProduct("p1")
	p.Supplier = ""
	p.Image = ""
	p.Stock = 0

	repo := &stubProductRepo{all: []*entity.Product{p}}
	uc := query.NewUseCase(repo, &stubLedgerRepo{})

	views, err := uc.ListAll()
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, entity.DefaultSupplier, v.Supplier,
		"proveedor vacío se proyecta con el proveedor genérico")
	assert.Equal(t, entity.DefaultImage, v.Image,
		"imagen vacía se proyecta con el ícono por defecto")
	assert.Equal(t, "2026-03-15", v.UpdatedLabel, "la etiqueta de fecha es solo-día")
	assert.True(t, v.OutOfStock)
	assert.False(t, v.LowStock)
}

func TestListAll_NoPersisteLosFallbacks(t *testing.T) {
	p := sampleProduct("p1")
	p.Supplier = ""

	repo := &stubProductRepo{all: []*entity.Product{p}}
	uc := query.NewUseCase(repo, &stubLedgerRepo{})

	_, err := uc.ListAll()
	require.NoError(t, err)
	assert.Equal(t, "", p.Supplier, "la proyección no debe mutar la entidad")
}

func TestListAll_CatalogoVacio(t *testing.T) {
	uc := query.NewUseCase(&stubProductRepo{}, &stubLedgerRepo{})
	views, err := uc.ListAll()
	require.NoError(t, err)
	assert.NotNil(t, views, "catálogo vacío retorna slice vacío, no nil")
	assert.Empty(t, views)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Search
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_TextoVacioCaeEnListAll(t *testing.T) {
	repo := &stubProductRepo{
		all:    []*entity.Product{sampleProduct("p1"), sampleProduct("p2")},
		search: []*entity.Product{},
	}
	uc := query.NewUseCase(repo, &stubLedgerRepo{})

	views, err := uc.Search("   ")
	require.NoError(t, err)
	assert.Len(t, views, 2, "texto en blanco no restringe: lista completa")
	assert.Empty(t, repo.searchedText, "no debe llegar al Search del repositorio")
}

func TestSearch_RecortaEspacios(t *testing.T) {
	repo := &stubProductRepo{search: []*entity.Product{sampleProduct("p1")}}
	uc := query.NewUseCase(repo, &stubLedgerRepo{})

	views, err := uc.Search("  agua  ")
	require.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "agua", repo.searchedText)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Filter
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_LowStock(t *testing.T) {
	p := sampleProduct("p1")
	p.Stock = 5
	repo := &stubProductRepo{lowStock: []*entity.Product{p}}
	uc := query.NewUseCase(repo, &stubLedgerRepo{})

	views, err := uc.Filter(query.FilterLowStock)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].LowStock)
}

func TestFilter_OutOfStock(t *testing.T) {
	p := sampleProduct("p1")
	p.Stock = 0
	repo := &stubProductRepo{outOfStock: []*entity.Product{p}}
	uc := query.NewUseCase(repo, &stubLedgerRepo{})

	views, err := uc.Filter(query.FilterOutOfStock)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].OutOfStock)
}

func TestFilter_RecentUsaVentanaDe7Dias(t *testing.T) {
	repo := &stubProductRepo{recent: []*entity.Product{sampleProduct("p1")}}
	uc := query.NewUseCase(repo, &stubLedgerRepo{})

	before := time.Now().Add(-7 * 24 * time.Hour)
	_, err := uc.Filter(query.FilterRecent)
	after := time.Now().Add(-7 * 24 * time.Hour)
	require.NoError(t, err)

	assert.False(t, repo.recentSince.Before(before))
	assert.False(t, repo.recentSince.After(after))
}

func TestFilter_KindDesconocido(t *testing.T) {
	uc := query.NewUseCase(&stubProductRepo{}, &stubLedgerRepo{})
	_, err := uc.Filter("trending")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Stats e History
// ──────────────────────────────────────────────────────────────────────────────

func TestStats(t *testing.T) {
	repo := &stubProductRepo{
		countAll:   12,
		countLow:   3,
		countOut:   2,
		totalValue: decimal.NewFromInt(456000),
	}
	uc := query.NewUseCase(repo, &stubLedgerRepo{})

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalProducts)
	assert.Equal(t, int64(3), stats.LowStock)
	assert.Equal(t, int64(2), stats.OutOfStock)
	assert.True(t, decimal.NewFromInt(456000).Equal(stats.TotalValue))
}

func TestHistory(t *testing.T) {
	now := time.Now()
	ledger := &stubLedgerRepo{byProduct: map[string][]*entity.StockTransaction{
		"p1": {
			{ID: 1, ProductID: "p1", Type: entity.TransactionTypeOut, Quantity: 15, Reason: "venta", CreatedAt: now},
			{ID: 2, ProductID: "p1", Type: entity.TransactionTypeIn, Quantity: 100, Reason: "reposición", CreatedAt: now},
		},
	}}
	uc := query.NewUseCase(&stubProductRepo{}, ledger)

	history, err := uc.History("p1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.TransactionTypeOut, history[0].Type)
	assert.Equal(t, int64(100), history[1].Quantity)
}

func TestHistory_ProductoSinHistoria(t *testing.T) {
	uc := query.NewUseCase(&stubProductRepo{}, &stubLedgerRepo{})
	history, err := uc.History("eliminado")
	require.NoError(t, err)
	assert.NotNil(t, history, "producto sin historia retorna slice vacío, no error")
	assert.Empty(t, history)
}
