package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, category, supplier, image, price, cost, stock, min_stock, aliases, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx vía Querier).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador del catálogo. Pasar pool o tx.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. SKU duplicado retorna domain.ErrDuplicate
// sin dejar inserción parcial.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Category, product.Supplier,
		product.Image, product.Price, product.Cost, product.Stock, product.MinStock,
		entity.JoinAliases(product.Aliases), product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Retorna (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row, "get product")
}

// GetBySKU obtiene un producto por SKU (comparación exacta, sensible a mayúsculas).
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
	return scanProduct(row, "get product by sku")
}

// GetByIDForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
// Serializa la secuencia leer-calcular-escribir-registrar por producto.
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
	return scanProduct(row, "get product for update")
}

// Update reescribe los campos generales de un producto. La columna stock está
// excluida de la sentencia: el stock solo cambia por UpdateStock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, name = $3, category = $4, supplier = $5, image = $6,
		    price = $7, cost = $8, min_stock = $9, aliases = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Category, product.Supplier,
		product.Image, product.Price, product.Cost, product.MinStock,
		entity.JoinAliases(product.Aliases), product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock escribe el nuevo stock y updated_at. Solo lo invoca la ruta
// atómica del servicio de comandos, con la fila ya bloqueada.
func (r *ProductRepo) UpdateStock(id string, stock int64, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = $3 WHERE id = $1`,
		id, stock, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Touch reescribe solo updated_at (no-op de stock sin entrada en el ledger).
func (r *ProductRepo) Touch(id string, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET updated_at = $2 WHERE id = $1`,
		id, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("touch product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el catálogo completo, más reciente primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.queryProducts("list products",
		`SELECT `+productColumns+` FROM products ORDER BY updated_at DESC`)
}

// searchProductsQuery compara cada alias por separado (no la forma serializada
// con "|"): una subcadena que cruza el separador no debe coincidir. ESCAPE fija
// el carácter de escape que usa escapeLike.
const searchProductsQuery = `
	SELECT ` + productColumns + ` FROM products
	WHERE name ILIKE $1 ESCAPE '\'
	   OR sku ILIKE $1 ESCAPE '\'
	   OR category ILIKE $1 ESCAPE '\'
	   OR EXISTS (
		SELECT 1 FROM unnest(string_to_array(aliases, '|')) AS alias
		WHERE alias ILIKE $1 ESCAPE '\'
	   )
	ORDER BY updated_at DESC`

// Search busca por subcadena literal insensible a mayúsculas en name, sku,
// category y cada alias. El texto del usuario se escapa: %, _ y \ se comparan
// como caracteres, nunca como comodines.
func (r *ProductRepo) Search(text string) ([]*entity.Product, error) {
	pattern := "%" + escapeLike(text) + "%"
	return r.queryProducts("search products", searchProductsQuery, pattern)
}

// ListLowStock: 0 < stock <= min_stock, ordenado por stock ascendente.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	return r.queryProducts("list low stock",
		`SELECT `+productColumns+` FROM products
		 WHERE stock > 0 AND stock <= min_stock ORDER BY stock ASC`)
}

// ListOutOfStock: stock == 0, más reciente primero.
func (r *ProductRepo) ListOutOfStock() ([]*entity.Product, error) {
	return r.queryProducts("list out of stock",
		`SELECT `+productColumns+` FROM products
		 WHERE stock = 0 ORDER BY updated_at DESC`)
}

// ListRecent: updated_at >= since, más reciente primero.
func (r *ProductRepo) ListRecent(since time.Time) ([]*entity.Product, error) {
	return r.queryProducts("list recent",
		`SELECT `+productColumns+` FROM products
		 WHERE updated_at >= $1 ORDER BY updated_at DESC`, since)
}

// CountAll total de productos del catálogo.
func (r *ProductRepo) CountAll() (int64, error) {
	return r.count("count products", `SELECT COUNT(*) FROM products`)
}

// CountLowStock productos con 0 < stock <= min_stock.
func (r *ProductRepo) CountLowStock() (int64, error) {
	return r.count("count low stock",
		`SELECT COUNT(*) FROM products WHERE stock > 0 AND stock <= min_stock`)
}

// CountOutOfStock productos con stock agotado.
func (r *ProductRepo) CountOutOfStock() (int64, error) {
	return r.count("count out of stock",
		`SELECT COUNT(*) FROM products WHERE stock = 0`)
}

// TotalValue calcula Σ(cost × stock). El SUM de PostgreSQL sobre BIGINT
// produce NUMERIC; se escanea a decimal vía el codec registrado en el pool.
func (r *ProductRepo) TotalValue() (decimal.Decimal, error) {
	var value decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(cost * stock), 0) FROM products`).Scan(&value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total inventory value: %w", err)
	}
	return value, nil
}

func (r *ProductRepo) count(op, query string) (int64, error) {
	var n int64
	if err := r.q.QueryRow(context.Background(), query).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (r *ProductRepo) queryProducts(op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProductRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanProductRow(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var aliases string
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.Supplier, &p.Image,
		&p.Price, &p.Cost, &p.Stock, &p.MinStock, &aliases,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Aliases = entity.SplitAliases(aliases)
	return &p, nil
}
