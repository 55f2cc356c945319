package ai

import (
	"encoding/json"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// ParseFindings decodifica la respuesta del modelo en hallazgos. Los modelos
// a veces envuelven el JSON en fences de markdown o le agregan prosa
// alrededor; acá se limpia todo eso. Una respuesta que no sea un array JSON
// produce cero hallazgos, nunca un error: el run sigue sin ese batch.
func ParseFindings(raw string) []models.ReviewFinding {
	cleaned := stripFences(strings.TrimSpace(raw))

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return nil
	}

	var findings []models.ReviewFinding
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &findings); err != nil {
		return nil
	}

	valid := findings[:0]
	for _, f := range findings {
		if f.File == "" || f.Line <= 0 || strings.TrimSpace(f.Comment) == "" {
			continue
		}
		valid = append(valid, f)
	}
	return valid
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
