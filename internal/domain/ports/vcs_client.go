package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// VCSClient define los métodos comunes para interactuar con las APIs de los sistemas de control de versiones.
type VCSClient interface {
	// GetPR obtiene los metadatos del PR (head/base SHA, título).
	GetPR(ctx context.Context, prNumber int) (models.PRContext, error)
	// ListChangedFiles lista los archivos modificados del PR con sus patches.
	ListChangedFiles(ctx context.Context, prNumber int) ([]models.ChangedFile, error)
	// ListReviewComments retorna los comentarios inline existentes, indexados por "path:position".
	ListReviewComments(ctx context.Context, prNumber int) (map[string]string, error)
	// CreateReview publica una review con comentarios inline y un cuerpo de resumen.
	CreateReview(ctx context.Context, prNumber int, commitSHA, body string, comments []models.ReviewComment) error
}
