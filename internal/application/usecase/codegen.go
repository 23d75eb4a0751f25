package usecase

import (
	"fmt"
	"strings"
)

// Palabras poco significativas que se saltean al generar códigos de categoría.
var stopWords = map[string]bool{
	"PARA": true, "DE": true, "LA": true, "EL": true,
	"LOS": true, "LAS": true, "Y": true, "A": true, "EN": true,
}

// generateCategoryCode deriva un código corto único a partir del nombre de la
// categoría: toma las primeras letras de las palabras significativas y, si
// colisiona con un código existente, alarga o numera.
func generateCategoryCode(name string, existing map[string]bool) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToUpper(name))
	words := strings.Fields(cleaned)

	significant := make([]string, 0, len(words))
	for _, w := range words {
		if !stopWords[w] && len(w) > 1 {
			significant = append(significant, w)
		}
	}
	if len(significant) == 0 {
		significant = words
	}

	var code string
	switch {
	case len(significant) >= 2:
		code = prefix(significant[0], 3) + prefix(significant[1], 3)
	case len(significant) == 1:
		code = prefix(significant[0], 6)
	default:
		code = prefix(strings.Join(words, ""), 6)
	}

	if !existing[code] {
		return truncate(code, 8)
	}

	// Colisión: alargar con más letras del nombre completo
	full := strings.Join(significant, "")
	for l := len(code) + 1; l <= len(full) && l < 10; l++ {
		candidate := prefix(full, l)
		if !existing[candidate] {
			return truncate(candidate, 8)
		}
	}

	// Último recurso: sufijo numérico
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s%d", code, i)
		if !existing[candidate] {
			return truncate(candidate, 8)
		}
	}
}

// nextProductCode arma el código de producto CODIGOCAT-0001 con el contador
// siguiente al mayor ya usado para esa categoría.
func nextProductCode(categoryCode string, used map[string]bool) string {
	for n := 1; n <= 9999; n++ {
		candidate := fmt.Sprintf("%s-%04d", categoryCode, n)
		if !used[candidate] {
			return candidate
		}
	}
	// Más de 9999 productos en una categoría: improbable, pero no colgarse
	for n := 10000; ; n++ {
		candidate := fmt.Sprintf("%s-%d", categoryCode, n)
		if !used[candidate] {
			return candidate
		}
	}
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) < n {
		return string(r)
	}
	return string(r[:n])
}

func truncate(s string, n int) string {
	return prefix(s, n)
}
