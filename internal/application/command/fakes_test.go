package command_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/command"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia. Replican el contrato de la
// implementación Postgres: GetByID retorna (nil, nil) cuando no existe, Update
// nunca toca el stock y el ledger es append-only con id monotónico.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu       sync.Mutex
	txMu     sync.Mutex // se mantiene durante toda una transacción (ver txRunner)
	products map[string]*entity.Product
	ledger   []*entity.StockTransaction
	nextTxID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: make(map[string]*entity.Product), nextTxID: 1}
}

func (s *fakeStore) productRepo() *fakeProductRepo { return &fakeProductRepo{store: s} }

func (s *fakeStore) ledgerRepo() *fakeLedgerRepo { return &fakeLedgerRepo{store: s} }

// txRunner ejecuta fn contra el mismo almacén sosteniendo txMu de principio a
// fin: emula el bloqueo de fila de Postgres, que serializa la secuencia
// leer-calcular-escribir-registrar. Dos transacciones concurrentes nunca leen
// el mismo stock obsoleto.
func (s *fakeStore) txRunner() command.TxRunner { return &fakeTxRunner{store: s} }

type fakeTxRunner struct{ store *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.StockTransactionRepository) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()
	return fn(r.store.productRepo(), r.store.ledgerRepo())
}

func cloneProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Aliases = append([]string(nil), p.Aliases...)
	return &cp
}

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return cloneProduct(r.store.products[id]), nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.products {
		if p.SKU == sku {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.products[product.ID]
	if !ok {
		return nil
	}
	// Como en la sentencia SQL: la columna stock no participa del update general.
	updated := cloneProduct(product)
	updated.Stock = current.Stock
	updated.CreatedAt = current.CreatedAt
	r.store.products[product.ID] = updated
	return nil
}

func (r *fakeProductRepo) UpdateStock(id string, stock int64, updatedAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.products[id]; ok {
		p.Stock = stock
		p.UpdatedAt = updatedAt
	}
	return nil
}

func (r *fakeProductRepo) Touch(id string, updatedAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.products[id]; ok {
		p.UpdatedAt = updatedAt
	}
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.products, id)
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		list = append(list, cloneProduct(p))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UpdatedAt.After(list[j].UpdatedAt) })
	return list, nil
}

func (r *fakeProductRepo) Search(text string) ([]*entity.Product, error) { return r.List() }

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) ListOutOfStock() ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) ListRecent(since time.Time) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) CountAll() (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.products)), nil
}

func (r *fakeProductRepo) CountLowStock() (int64, error) { return 0, nil }

func (r *fakeProductRepo) CountOutOfStock() (int64, error) { return 0, nil }

func (r *fakeProductRepo) TotalValue() (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	total := decimal.Zero
	for _, p := range r.store.products {
		total = total.Add(decimal.NewFromInt(p.Cost).Mul(decimal.NewFromInt(p.Stock)))
	}
	return total, nil
}

type fakeLedgerRepo struct{ store *fakeStore }

func (r *fakeLedgerRepo) Create(transaction *entity.StockTransaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *transaction
	cp.ID = r.store.nextTxID
	r.store.nextTxID++
	r.store.ledger = append(r.store.ledger, &cp)
	transaction.ID = cp.ID
	return nil
}

func (r *fakeLedgerRepo) ListByProduct(productID string) ([]*entity.StockTransaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var list []*entity.StockTransaction
	for _, t := range r.store.ledger {
		if t.ProductID == productID {
			cp := *t
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeLedgerRepo) DeleteByProduct(productID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.ledger[:0]
	for _, t := range r.store.ledger {
		if t.ProductID != productID {
			kept = append(kept, t)
		}
	}
	r.store.ledger = kept
	return nil
}

var (
	_ repository.ProductRepository          = (*fakeProductRepo)(nil)
	_ repository.StockTransactionRepository = (*fakeLedgerRepo)(nil)
)
