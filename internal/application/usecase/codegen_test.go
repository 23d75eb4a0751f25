package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ──────────────────────────────────────────────────────────────────────────────
// generateCategoryCode
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateCategoryCode_DosPalabrasSignificativas(t *testing.T) {
	// "Tablas Naturales" → TAB + NAT
	code := generateCategoryCode("Tablas Naturales", nil)
	assert.Equal(t, "TABNAT", code)
}

func TestGenerateCategoryCode_SalteaStopWords(t *testing.T) {
	// "Tablas de picar" → "de" se saltea → TAB + PIC
	code := generateCategoryCode("Tablas de picar", nil)
	assert.Equal(t, "TABPIC", code)
}

func TestGenerateCategoryCode_UnaPalabra(t *testing.T) {
	code := generateCategoryCode("Accesorios", nil)
	assert.Equal(t, "ACCESO", code)
}

func TestGenerateCategoryCode_ColisionAlargaElCodigo(t *testing.T) {
	existing := map[string]bool{"TABNAT": true}
	code := generateCategoryCode("Tablas Naturales", existing)
	assert.NotEqual(t, "TABNAT", code)
	assert.NotEmpty(t, code)
	assert.LessOrEqual(t, len(code), 8, "el código nunca pasa de 8 caracteres")
}

func TestGenerateCategoryCode_ColisionTotal_SufijoNumerico(t *testing.T) {
	// Todos los alargamientos posibles ya tomados: debe numerar
	existing := map[string]bool{
		"TABNAT": true, "TABLASN": true, "TABLASNA": true, "TABLASNAT": true,
	}
	code := generateCategoryCode("Tablas Naturales", existing)
	assert.False(t, existing[code], "el código generado no debe colisionar")
	assert.LessOrEqual(t, len(code), 8)
}

func TestGenerateCategoryCode_GuionesYMayusculas(t *testing.T) {
	a := generateCategoryCode("tablas-naturales", nil)
	b := generateCategoryCode("TABLAS NATURALES", nil)
	assert.Equal(t, a, b, "guiones y mayúsculas no cambian el código")
}

// ──────────────────────────────────────────────────────────────────────────────
// nextProductCode
// ──────────────────────────────────────────────────────────────────────────────

func TestNextProductCode_PrimerProducto(t *testing.T) {
	code := nextProductCode("TABNAT", nil)
	assert.Equal(t, "TABNAT-0001", code)
}

func TestNextProductCode_RellenaHuecos(t *testing.T) {
	used := map[string]bool{"TABNAT-0001": true, "TABNAT-0003": true}
	code := nextProductCode("TABNAT", used)
	assert.Equal(t, "TABNAT-0002", code, "toma el primer número libre")
}

func TestNextProductCode_Secuencial(t *testing.T) {
	used := map[string]bool{"TABNAT-0001": true, "TABNAT-0002": true}
	code := nextProductCode("TABNAT", used)
	assert.Equal(t, "TABNAT-0003", code)
}
