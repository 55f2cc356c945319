package diff

import "strings"

// charsPerToken es la heurística clásica de ~4 caracteres por token.
const charsPerToken = 4

// EstimateTokens estima la cantidad de tokens de un texto sin llamar al modelo.
func EstimateTokens(s string) int {
	return len(s) / charsPerToken
}

// Truncate recorta un patch a un presupuesto de tokens cortando en límites
// de hunk. Si ni el primer hunk entra, lo recorta línea a línea conservando
// el header. Retorna el patch resultante y si hubo recorte.
func Truncate(patch string, maxTokens int) (string, bool) {
	if maxTokens <= 0 || EstimateTokens(patch) <= maxTokens {
		return patch, false
	}

	fp := Parse(patch)
	var b strings.Builder

	for i, hunk := range fp.Hunks {
		section := hunk.Header + "\n" + strings.Join(hunk.Lines, "\n") + "\n"

		if EstimateTokens(b.String()+section) > maxTokens {
			if i == 0 {
				b.WriteString(hunk.Header)
				b.WriteString("\n")
				for _, line := range hunk.Lines {
					if EstimateTokens(b.String()+line) > maxTokens {
						break
					}
					b.WriteString(line)
					b.WriteString("\n")
				}
			}
			break
		}
		b.WriteString(section)
	}

	return strings.TrimSuffix(b.String(), "\n"), true
}
