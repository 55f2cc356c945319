package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// ReviewGenerator define la interfaz para proveedores de IA que generan
// hallazgos de revisión a partir de un diff.
type ReviewGenerator interface {
	// GenerateFindings envía el contenido del batch al modelo y parsea los
	// hallazgos estructurados. Una respuesta malformada produce cero
	// hallazgos, no un error.
	GenerateFindings(ctx context.Context, prompt string) ([]models.ReviewFinding, error)

	// GetModelName retorna el nombre del modelo actual (ej: "gemini-2.5-flash")
	GetModelName() string

	// GetProviderName retorna el nombre del proveedor (ej: "gemini", "anthropic")
	GetProviderName() string
}
