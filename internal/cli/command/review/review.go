package review

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	airegistry "github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/Tomas-vilte/MateReview/internal/services"
	"github.com/urfave/cli/v3"
)

// ReviewCommand arma y corre la revisión de un PR de punta a punta.
type ReviewCommand struct {
	providers *airegistry.ReviewProviderRegistry
}

func NewReviewCommand(providers *airegistry.ReviewProviderRegistry) *ReviewCommand {
	return &ReviewCommand{
		providers: providers,
	}
}

func (c *ReviewCommand) CreateCommand(t *i18n.Translations, cfg *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "review",
		Aliases: []string{"r"},
		Usage:   t.GetMessage("review_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "pr-number",
				Aliases: []string{"n"},
				Usage:   t.GetMessage("pr_number_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: t.GetMessage("debug_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			logger.Initialize(command.Bool("debug"), false)

			prNumber := int(command.Int("pr-number"))
			if prNumber == 0 {
				resolved, err := github.PRNumberFromEvent(cfg.EventPath)
				if err != nil {
					return fmt.Errorf(t.GetMessage("error.event_payload", 0, nil)+": %w", err)
				}
				prNumber = resolved
			}

			generator, err := c.providers.CreateFromConfig(ctx, cfg)
			if err != nil {
				return err
			}
			if closer, ok := generator.(interface{ Close() error }); ok {
				defer func() {
					_ = closer.Close()
				}()
			}

			vcsClient := github.NewGitHubClient(cfg.Owner, cfg.Repo, cfg.GitHubToken, t)
			policy := models.NewFilterPolicy(cfg.Whitelist, cfg.Blacklist)
			service := services.NewReviewService(vcsClient, generator, policy, services.NewBatcher(cfg.BatchTokens), t)

			fmt.Println(t.GetMessage("review_started", 0, map[string]interface{}{
				"PRNumber": prNumber,
			}))

			report, err := service.ReviewPR(ctx, prNumber)
			if err != nil {
				return fmt.Errorf(t.GetMessage("error.list_files", 0, map[string]interface{}{
					"PRNumber": prNumber,
				})+": %w", err)
			}

			fmt.Println(t.GetMessage("review_finished", report.InlineComments, map[string]interface{}{
				"Count":    report.InlineComments,
				"PRNumber": prNumber,
			}))
			return nil
		},
	}
}
