package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests escapeLike — el texto de búsqueda se compara literal, nunca como patrón
// ──────────────────────────────────────────────────────────────────────────────

func TestEscapeLike_PorcentajeLiteral(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"),
		"% en el texto debe compararse como carácter, no como comodín")
}

func TestEscapeLike_GuionBajoLiteral(t *testing.T) {
	assert.Equal(t, `50\_ml`, escapeLike("50_ml"),
		"_ en el texto no debe coincidir con un carácter cualquiera")
}

func TestEscapeLike_BackslashLiteral(t *testing.T) {
	assert.Equal(t, `c:\\tmp`, escapeLike(`c:\tmp`),
		"\\ debe duplicarse para no escapar lo que sigue")
}

func TestEscapeLike_TextoSinMetacaracteres(t *testing.T) {
	assert.Equal(t, "agua 500ml", escapeLike("agua 500ml"))
	assert.Equal(t, "", escapeLike(""))
}

func TestEscapeLike_CombinacionDeMetacaracteres(t *testing.T) {
	assert.Equal(t, `\%\_\\`, escapeLike(`%_\`))
}

// El patrón completo que construye Search: comodines solo en los extremos.
func TestEscapeLike_PatronDeBusqueda(t *testing.T) {
	pattern := "%" + escapeLike("100%") + "%"
	assert.Equal(t, `%100\%%`, pattern,
		"solo los % de los extremos actúan como comodines de subcadena")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la sentencia de búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestSearchQuery_DeclaraElCaracterDeEscape(t *testing.T) {
	assert.Equal(t, 4, strings.Count(searchProductsQuery, `ESCAPE '\'`),
		"cada comparación ILIKE debe declarar el escape que usa escapeLike")
}

func TestSearchQuery_ComparaAliasPorAlias(t *testing.T) {
	assert.Contains(t, searchProductsQuery, "unnest(string_to_array(aliases, '|'))",
		"los alias se comparan uno a uno; una subcadena que cruza el separador no coincide")
	assert.NotContains(t, searchProductsQuery, "aliases ILIKE",
		"la forma serializada con | no debe participar de la comparación")
}
