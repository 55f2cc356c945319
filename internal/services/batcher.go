package services

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/diff"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

type (
	// ReviewFile es un archivo del PR ya parseado y listo para revisar.
	ReviewFile struct {
		File      models.ChangedFile
		Patch     *diff.FilePatch
		Truncated bool
		content   string
	}

	// Batch agrupa archivos cuyo contenido entra junto en una sola llamada
	// al modelo.
	Batch struct {
		Files   []ReviewFile
		Content string
	}

	// Batcher particiona archivos en batches bajo un presupuesto de tokens.
	Batcher struct {
		budgetTokens int
	}
)

func NewBatcher(budgetTokens int) *Batcher {
	return &Batcher{budgetTokens: budgetTokens}
}

// Prepare parsea el patch del archivo, recortándolo si él solo excede el
// presupuesto del batch. Recortar no es un error: degradamos a una revisión
// parcial antes que descartar el archivo entero.
func (b *Batcher) Prepare(file models.ChangedFile) ReviewFile {
	patch, truncated := diff.Truncate(file.Patch, b.budgetTokens)
	file.Patch = patch

	return ReviewFile{
		File:      file,
		Patch:     diff.Parse(patch),
		Truncated: truncated,
		content:   formatFileContent(file),
	}
}

// Partition arma los batches en orden, sin partir un archivo en dos salvo
// que ya venga recortado por Prepare.
func (b *Batcher) Partition(files []ReviewFile) []Batch {
	var batches []Batch
	var current []ReviewFile
	var content strings.Builder

	flush := func() {
		if len(current) == 0 {
			return
		}
		batches = append(batches, Batch{Files: current, Content: content.String()})
		current = nil
		content.Reset()
	}

	for _, rf := range files {
		if content.Len() > 0 && diff.EstimateTokens(content.String()+rf.content) > b.budgetTokens {
			flush()
		}
		content.WriteString(rf.content)
		current = append(current, rf)
	}
	flush()

	return batches
}

func formatFileContent(file models.ChangedFile) string {
	return fmt.Sprintf("### File: %s\n```diff\n%s\n```\n\n", file.Path, file.Patch)
}
