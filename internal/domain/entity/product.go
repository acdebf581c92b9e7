package entity

import (
	"strings"
	"time"
)

// Valores por defecto aplicados al crear un producto.
const (
	DefaultMinStock = 10
	DefaultSupplier = "Proveedor general"
	DefaultImage    = "cube-outline"
)

// aliasSeparator separa los alias en la columna de texto. Un alias nunca puede
// contener el separador; JoinAliases lo elimina antes de serializar.
const aliasSeparator = "|"

// Product representa un producto del catálogo. Stock es la cantidad vigente y
// autoritativa; cada cambio de Stock genera una StockTransaction en el ledger.
// Price y Cost se expresan en unidades menores de moneda (enteros).
type Product struct {
	ID        string
	SKU       string // único entre productos vivos, sensible a mayúsculas
	Name      string
	Category  string
	Supplier  string
	Image     string
	Price     int64
	Cost      int64
	Stock     int64 // invariante: nunca negativo
	MinStock  int64 // umbral de reposición
	Aliases   []string
	CreatedAt time.Time
	UpdatedAt time.Time // se reescribe en toda mutación, incluidas las de solo stock
}

// IsLowStock indica stock por encima de cero pero en o bajo el umbral.
func (p *Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock <= p.MinStock
}

// IsOutOfStock indica stock agotado.
func (p *Product) IsOutOfStock() bool {
	return p.Stock == 0
}

// JoinAliases serializa la lista de alias a la forma delimitada de la columna.
// Elimina el separador dentro de cada alias y descarta entradas vacías;
// la representación interna siempre es la lista, esta forma existe solo en
// la frontera de almacenamiento.
func JoinAliases(aliases []string) string {
	cleaned := make([]string, 0, len(aliases))
	for _, a := range aliases {
		a = strings.TrimSpace(strings.ReplaceAll(a, aliasSeparator, ""))
		if a == "" {
			continue
		}
		cleaned = append(cleaned, a)
	}
	return strings.Join(cleaned, aliasSeparator)
}

// SplitAliases deserializa la forma delimitada de la columna a la lista de alias.
func SplitAliases(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, aliasSeparator)
	aliases := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		aliases = append(aliases, p)
	}
	return aliases
}
