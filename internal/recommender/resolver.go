package recommender

import "strings"

// Un matcher es un nivel de la cadena de resolución: recibe la consulta y el
// universo de títulos (en orden de fila) y devuelve la fila que matchea.
type matcher func(query string, titles []string) (int, bool)

// Cadena ordenada: del match más preciso al más laxo. El primer nivel que
// acierta gana; dentro de un nivel gana la primera fila en orden de matriz.
var tiers = []matcher{
	matchExact,
	matchCaseInsensitive,
	matchSubstring,
	matchTokens,
}

// Resolve mapea una consulta de texto libre a una fila de la matriz.
func Resolve(query string, titles []string) (int, bool) {
	for _, match := range tiers {
		if row, ok := match(query, titles); ok {
			return row, true
		}
	}
	return 0, false
}

// nivel 1: igualdad byte a byte
func matchExact(query string, titles []string) (int, bool) {
	for i, t := range titles {
		if t == query {
			return i, true
		}
	}
	return 0, false
}

// nivel 2: igualdad ignorando mayúsculas
func matchCaseInsensitive(query string, titles []string) (int, bool) {
	for i, t := range titles {
		if strings.EqualFold(t, query) {
			return i, true
		}
	}
	return 0, false
}

// nivel 3: la consulta es substring del título
func matchSubstring(query string, titles []string) (int, bool) {
	q := strings.ToLower(query)
	for i, t := range titles {
		if strings.Contains(strings.ToLower(t), q) {
			return i, true
		}
	}
	return 0, false
}

// nivel 4: algún token de la consulta es substring del título. Con palabras
// cortas esto matchea de más, pero es el comportamiento esperado: mejor
// devolver algo que nada.
func matchTokens(query string, titles []string) (int, bool) {
	tokens := strings.Fields(query)
	for i, t := range titles {
		lower := strings.ToLower(t)
		for _, tok := range tokens {
			if strings.Contains(lower, strings.ToLower(tok)) {
				return i, true
			}
		}
	}
	return 0, false
}
