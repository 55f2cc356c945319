package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/google/go-github/v80/github"
	"github.com/gregjones/httpcache"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error)
	ListComments(ctx context.Context, owner, repo string, number int, opts *github.PullRequestListCommentsOptions) ([]*github.PullRequestComment, *github.Response, error)
	CreateReview(ctx context.Context, owner, repo string, number int, review *github.PullRequestReviewRequest) (*github.PullRequestReview, *github.Response, error)
}

// GitHubClient implementa ports.VCSClient sobre la API REST de GitHub.
type GitHubClient struct {
	prService PullRequestsService
	owner     string
	repo      string
	trans     *i18n.Translations
}

// NewGitHubClient arma el cliente con el stack de transporte completo:
//  1. httpcache (requests condicionales por ETag, clave para los listados)
//  2. go-github-ratelimit (duerme ante secondary rate limits en vez de fallar)
//  3. oauth2 (token estático del runner)
func NewGitHubClient(owner, repo, token string, trans *i18n.Translations) *GitHubClient {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimited := github_ratelimit.NewClient(cacheTransport)

	var httpClient *http.Client = rateLimited
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, rateLimited)
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService: client.PullRequests,
		owner:     owner,
		repo:      repo,
		trans:     trans,
	}
}

// NewGitHubClientWithServices permite inyectar los servicios en los tests.
func NewGitHubClientWithServices(prService PullRequestsService, owner, repo string, trans *i18n.Translations) *GitHubClient {
	return &GitHubClient{
		prService: prService,
		owner:     owner,
		repo:      repo,
		trans:     trans,
	}
}

// GetPR obtiene los metadatos del PR.
func (ghc *GitHubClient) GetPR(ctx context.Context, prNumber int) (models.PRContext, error) {
	pr, _, err := ghc.prService.Get(ctx, ghc.owner, ghc.repo, prNumber)
	if err != nil {
		return models.PRContext{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_pr", 0, map[string]interface{}{
			"PRNumber": prNumber,
		}), err)
	}

	return models.PRContext{
		Owner:   ghc.owner,
		Repo:    ghc.repo,
		Number:  prNumber,
		Title:   pr.GetTitle(),
		HeadSHA: pr.GetHead().GetSHA(),
		BaseSHA: pr.GetBase().GetSHA(),
	}, nil
}

// ListChangedFiles lista los archivos del PR con sus patches, paginando.
func (ghc *GitHubClient) ListChangedFiles(ctx context.Context, prNumber int) ([]models.ChangedFile, error) {
	opts := &github.ListOptions{PerPage: 100}

	var files []models.ChangedFile
	for {
		page, resp, err := ghc.prService.ListFiles(ctx, ghc.owner, ghc.repo, prNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.list_files", 0, map[string]interface{}{
				"PRNumber": prNumber,
			}), err)
		}

		for _, f := range page {
			files = append(files, models.ChangedFile{
				Path:      f.GetFilename(),
				Status:    f.GetStatus(),
				Patch:     f.GetPatch(),
				Additions: f.GetAdditions(),
				Deletions: f.GetDeletions(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return files, nil
}

// ListReviewComments indexa los comentarios inline existentes por
// "path:position" para no duplicar en corridas sucesivas.
func (ghc *GitHubClient) ListReviewComments(ctx context.Context, prNumber int) (map[string]string, error) {
	opts := &github.PullRequestListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	existing := make(map[string]string)
	for {
		comments, resp, err := ghc.prService.ListComments(ctx, ghc.owner, ghc.repo, prNumber, opts)
		if err != nil {
			return nil, err
		}

		for _, c := range comments {
			key := fmt.Sprintf("%s:%d", c.GetPath(), c.GetPosition())
			existing[key] = c.GetBody()
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return existing, nil
}

// CreateReview publica la review con los comentarios inline y el resumen.
func (ghc *GitHubClient) CreateReview(ctx context.Context, prNumber int, commitSHA, body string, comments []models.ReviewComment) error {
	draft := make([]*github.DraftReviewComment, 0, len(comments))
	for _, c := range comments {
		draft = append(draft, &github.DraftReviewComment{
			Path:     github.Ptr(c.Path),
			Position: github.Ptr(c.Position),
			Body:     github.Ptr(c.Body),
		})
	}

	review := &github.PullRequestReviewRequest{
		CommitID: github.Ptr(commitSHA),
		Body:     github.Ptr(body),
		Event:    github.Ptr("COMMENT"),
		Comments: draft,
	}

	_, resp, err := ghc.prService.CreateReview(ctx, ghc.owner, ghc.repo, prNumber, review)
	if err != nil {
		// El 403 típico es un GITHUB_TOKEN sin permiso pull-requests: write
		if resp != nil && resp.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.insufficient_permissions", 0, map[string]interface{}{
				"PRNumber": prNumber,
			}), err)
		}
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.create_review", 0, map[string]interface{}{
			"PRNumber": prNumber,
		}), err)
	}
	return nil
}
