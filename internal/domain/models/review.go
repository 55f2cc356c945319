package models

type (
	// PRContext identifica la Pull Request bajo revisión. Inmutable durante el run.
	PRContext struct {
		Owner   string
		Repo    string
		Number  int
		Title   string
		HeadSHA string
		BaseSHA string
	}

	// ChangedFile es un archivo modificado en el PR, con su patch crudo.
	ChangedFile struct {
		Path      string
		Status    string // "added", "modified", "removed", "renamed"
		Patch     string
		Additions int
		Deletions int
	}

	// ReviewFinding es un hallazgo producido por el proveedor de IA.
	// Line refiere a la numeración del archivo nuevo, no a la posición del patch.
	ReviewFinding struct {
		File       string `json:"file"`
		Line       int    `json:"line"`
		Comment    string `json:"comment"`
		Suggestion string `json:"suggestion,omitempty"`
	}

	// ReviewComment es un comentario inline listo para publicar en el host.
	ReviewComment struct {
		Path     string
		Position int
		Body     string
	}

	// RunReport resume el resultado de una corrida del orquestador.
	RunReport struct {
		ReviewedFiles   []string
		SkippedFiles    []string
		FailedFiles     []string
		InlineComments  int
		GeneralComments []string
		DroppedFindings int
	}
)

// HasActivity indica si la corrida produjo algo más que el resumen.
func (r RunReport) HasActivity() bool {
	return r.InlineComments > 0 || len(r.GeneralComments) > 0
}
