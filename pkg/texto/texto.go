// Package texto reúne utilidades de normalização para busca.
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var semAcento = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar remove acentos e baixa a caixa, para busca por nome
// insensível a acento ("José" e "jose" devem casar).
func Normalizar(s string) string {
	out, _, err := transform.String(semAcento, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
