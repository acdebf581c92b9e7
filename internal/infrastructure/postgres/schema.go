package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL esquema durable del subsistema: catálogo + ledger.
// El CHECK de stock y el UNIQUE de sku son la última línea de defensa de los
// invariantes; el FK con ON DELETE CASCADE respalda la eliminación en cascada
// de la historia que hace explícita el servicio de comandos.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS products (
	id         TEXT PRIMARY KEY,
	sku        TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	category   TEXT NOT NULL DEFAULT '',
	supplier   TEXT NOT NULL DEFAULT '',
	image      TEXT NOT NULL DEFAULT '',
	price      BIGINT NOT NULL CHECK (price >= 0),
	cost       BIGINT NOT NULL CHECK (cost >= 0),
	stock      BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0),
	min_stock  BIGINT NOT NULL DEFAULT 10 CHECK (min_stock >= 0),
	aliases    TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_products_updated_at ON products (updated_at DESC);

CREATE TABLE IF NOT EXISTS stock_transactions (
	id         BIGSERIAL PRIMARY KEY,
	product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	type       TEXT NOT NULL CHECK (type IN ('IN', 'OUT')),
	quantity   BIGINT NOT NULL CHECK (quantity > 0),
	reason     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_stock_transactions_product ON stock_transactions (product_id, id);
`

// EnsureSchema crea las tablas e índices si no existen. Se invoca una vez al
// arrancar, antes de servir tráfico.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
