package services

import (
	"context"
	"fmt"

	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/logger"
)

// maxCommentDistance es qué tan lejos puede caer un hallazgo de una línea
// del patch antes de degradarlo a comentario general.
const maxCommentDistance = 3

// ReviewService orquesta la revisión completa de un PR: listar archivos,
// filtrar, batchear, pedirle hallazgos al modelo y publicar la review.
type ReviewService struct {
	vcsClient ports.VCSClient
	generator ports.ReviewGenerator
	policy    models.FilterPolicy
	batcher   *Batcher
	trans     *i18n.Translations
}

func NewReviewService(
	vcsClient ports.VCSClient,
	generator ports.ReviewGenerator,
	policy models.FilterPolicy,
	batcher *Batcher,
	trans *i18n.Translations,
) *ReviewService {
	return &ReviewService{
		vcsClient: vcsClient,
		generator: generator,
		policy:    policy,
		batcher:   batcher,
		trans:     trans,
	}
}

// ReviewPR corre la revisión. El único error fatal es no poder listar los
// archivos del PR; todo lo demás degrada y queda asentado en el reporte.
func (s *ReviewService) ReviewPR(ctx context.Context, prNumber int) (models.RunReport, error) {
	report := models.RunReport{}

	files, err := s.vcsClient.ListChangedFiles(ctx, prNumber)
	if err != nil {
		return report, domainerrors.NewListFilesError(prNumber, err)
	}

	// Si los metadatos del PR no salen, publicamos igual sin commit SHA.
	var headSHA string
	if prCtx, err := s.vcsClient.GetPR(ctx, prNumber); err != nil {
		logger.Warn(ctx, "no se pudieron obtener los metadatos del PR", "pr", prNumber, "error", err)
	} else {
		headSHA = prCtx.HeadSHA
	}

	existing, err := s.vcsClient.ListReviewComments(ctx, prNumber)
	if err != nil {
		logger.Warn(ctx, "no se pudieron listar los comentarios existentes", "pr", prNumber, "error", err)
		existing = map[string]string{}
	}

	reviewFiles := s.collectReviewFiles(ctx, files, &report)

	comments := s.generateComments(ctx, reviewFiles, existing, &report)

	body := s.buildSummaryBody(report)
	if err := s.vcsClient.CreateReview(ctx, prNumber, headSHA, body, comments); err != nil {
		// Publicar es best effort: la corrida ya revisó lo que pudo.
		logger.Error(ctx, "no se pudo publicar la review", err, "pr", prNumber)
	}

	return report, nil
}

// collectReviewFiles aplica filtros y parsea los patches. Las fallas por
// archivo se asientan y no cortan la corrida.
func (s *ReviewService) collectReviewFiles(ctx context.Context, files []models.ChangedFile, report *models.RunReport) []ReviewFile {
	var reviewFiles []ReviewFile

	for _, file := range files {
		if file.Status == "removed" {
			logger.Info(ctx, "archivo eliminado, se saltea", "file", file.Path)
			continue
		}

		if !s.policy.ShouldReview(file.Path) {
			logger.Info(ctx, "archivo excluido por filtros", "file", file.Path)
			report.SkippedFiles = append(report.SkippedFiles, file.Path)
			continue
		}

		if file.Patch == "" {
			logger.Warn(ctx, "archivo sin patch disponible", "file", file.Path)
			report.FailedFiles = append(report.FailedFiles, file.Path)
			continue
		}

		rf := s.batcher.Prepare(file)
		if rf.Truncated {
			logger.Warn(ctx, "patch recortado al presupuesto de tokens", "file", file.Path)
		}
		reviewFiles = append(reviewFiles, rf)
		report.ReviewedFiles = append(report.ReviewedFiles, file.Path)
	}

	return reviewFiles
}

// generateComments llama al modelo por batch y mapea los hallazgos a
// posiciones del patch. Hallazgos fuera del diff degradan a comentarios
// generales; los que no matchean ningún archivo se descartan.
func (s *ReviewService) generateComments(ctx context.Context, reviewFiles []ReviewFile, existing map[string]string, report *models.RunReport) []models.ReviewComment {
	byPath := make(map[string]ReviewFile, len(reviewFiles))
	for _, rf := range reviewFiles {
		byPath[rf.File.Path] = rf
	}

	var comments []models.ReviewComment
	queued := make(map[string]bool)

	for i, batch := range s.batcher.Partition(reviewFiles) {
		findings, err := s.generator.GenerateFindings(ctx, batch.Content)
		if err != nil {
			logger.Warn(ctx, "falló la generación del batch", "batch", i, "error", err)
			continue
		}

		for _, finding := range findings {
			rf, ok := byPath[finding.File]
			if !ok {
				logger.Debug(ctx, "hallazgo sobre un archivo desconocido", "file", finding.File)
				report.DroppedFindings++
				continue
			}

			line, ok := rf.Patch.ClosestLine(finding.Line, maxCommentDistance)
			if !ok {
				report.GeneralComments = append(report.GeneralComments, formatGeneralComment(finding))
				continue
			}

			position, _ := rf.Patch.Position(line)
			key := fmt.Sprintf("%s:%d", finding.File, position)
			if queued[key] {
				report.DroppedFindings++
				continue
			}
			if _, dup := existing[key]; dup {
				logger.Debug(ctx, "posición ya comentada en una corrida anterior", "file", finding.File, "position", position)
				report.DroppedFindings++
				continue
			}

			queued[key] = true
			comments = append(comments, models.ReviewComment{
				Path:     finding.File,
				Position: position,
				Body:     formatInlineComment(finding),
			})
		}
	}

	report.InlineComments = len(comments)
	return comments
}

// buildSummaryBody arma el cuerpo del resumen. Se publica siempre, haya o
// no hallazgos.
func (s *ReviewService) buildSummaryBody(report models.RunReport) string {
	body := s.trans.GetMessage("summary.header", 0, nil) + "\n\n"

	if len(report.ReviewedFiles) > 0 {
		body += s.trans.GetMessage("summary.reviewed_files", len(report.ReviewedFiles), map[string]interface{}{
			"Count": len(report.ReviewedFiles),
		}) + "\n"
		for _, f := range report.ReviewedFiles {
			body += fmt.Sprintf("- %s\n", f)
		}
	}

	if len(report.SkippedFiles) > 0 {
		body += "\n" + s.trans.GetMessage("summary.skipped_files", len(report.SkippedFiles), map[string]interface{}{
			"Count": len(report.SkippedFiles),
		}) + "\n"
		for _, f := range report.SkippedFiles {
			body += fmt.Sprintf("- %s\n", f)
		}
	}

	if len(report.FailedFiles) > 0 {
		body += "\n" + s.trans.GetMessage("summary.failed_files", len(report.FailedFiles), map[string]interface{}{
			"Count": len(report.FailedFiles),
		}) + "\n"
		for _, f := range report.FailedFiles {
			body += fmt.Sprintf("- %s\n", f)
		}
	}

	if report.InlineComments > 0 {
		body += "\n" + s.trans.GetMessage("summary.suggestions_found", report.InlineComments, map[string]interface{}{
			"Count": report.InlineComments,
		})
	} else {
		body += "\n" + s.trans.GetMessage("summary.clean", 0, nil)
	}

	if len(report.GeneralComments) > 0 {
		body += "\n\n### " + s.trans.GetMessage("summary.general_comments", 0, nil) + "\n\n"
		for i, c := range report.GeneralComments {
			if i > 0 {
				body += "\n\n"
			}
			body += c
		}
	}

	return body
}

func formatInlineComment(finding models.ReviewFinding) string {
	body := finding.Comment
	if finding.Suggestion != "" {
		body += fmt.Sprintf("\n\n```suggestion\n%s\n```", finding.Suggestion)
	}
	return body
}

func formatGeneralComment(finding models.ReviewFinding) string {
	body := fmt.Sprintf("**In file %s, line %d:**\n\n%s", finding.File, finding.Line, finding.Comment)
	if finding.Suggestion != "" {
		body += fmt.Sprintf("\n\n```suggestion\n%s\n```", finding.Suggestion)
	}
	return body
}
