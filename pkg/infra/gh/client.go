package gh

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/gitoon/gitoon/pkg/domain/interfaces"
	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/utils/logging"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

// Client wraps the GitHub REST API for both reading commit activity and
// publishing strips. It authenticates with a personal access token, with
// GitHub App credentials, or not at all for public repositories.
type Client struct {
	gh *github.Client
}

var _ interfaces.CommitSource = (*Client)(nil)

type config struct {
	token      types.GitHubToken
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey
	baseURL    string
}

type Option func(*config)

func WithToken(token types.GitHubToken) Option {
	return func(x *config) {
		x.token = token
	}
}

func WithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, privateKey types.GitHubAppPrivateKey) Option {
	return func(x *config) {
		x.appID = appID
		x.installID = installID
		x.privateKey = privateKey
	}
}

// WithBaseURL points the client at a different API endpoint, such as a
// GitHub Enterprise server or a test server.
func WithBaseURL(baseURL string) Option {
	return func(x *config) {
		x.baseURL = baseURL
	}
}

func New(ctx context.Context, options ...Option) (*Client, error) {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	gh, err := cfg.build(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.baseURL != "" {
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", cfg.baseURL))
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		gh.BaseURL = u
		gh.UploadURL = u
	}

	return &Client{gh: gh}, nil
}

func (x *config) build(ctx context.Context) (*github.Client, error) {
	hasApp := x.appID != 0 || x.installID != 0 || x.privateKey != ""
	if hasApp && x.token != "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token and GitHub App credentials are exclusive")
	}

	switch {
	case hasApp:
		if x.appID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
		}
		if x.installID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
		}
		if x.privateKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "private key is empty")
		}

		itr, err := ghinstallation.New(http.DefaultTransport, int64(x.appID), int64(x.installID), []byte(x.privateKey))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport")
		}
		return github.NewClient(&http.Client{Transport: itr}), nil

	case x.token != "":
		return github.NewTokenClient(ctx, string(x.token)), nil

	default:
		// Anonymous access works for public repositories within GitHub's
		// unauthenticated rate limit.
		return github.NewClient(nil), nil
	}
}

// ListCommits returns the non-merge commits of one UTC day, oldest first.
func (x *Client) ListCommits(ctx context.Context, repo model.TargetRepo, date types.ComicDate) ([]model.Commit, error) {
	since, until := date.Window()
	opts := &github.CommitsListOptions{
		Since:       since,
		Until:       until,
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var commits []model.Commit
	for {
		page, resp, err := x.gh.Repositories.ListCommits(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, classifyError(err, repo)
		}

		for _, rc := range page {
			// Merge commits only repeat what their parents already say.
			if len(rc.Parents) > 1 {
				continue
			}
			commits = append(commits, newCommit(rc))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	sort.Slice(commits, func(i, j int) bool {
		return commits[i].Timestamp.Before(commits[j].Timestamp)
	})

	logging.From(ctx).Info("Listed commits",
		slog.Int("count", len(commits)),
		slog.String("repo", repo.Slug()),
		slog.String("date", string(date)),
	)

	return commits, nil
}

func newCommit(rc *github.RepositoryCommit) model.Commit {
	sha := rc.GetSHA()
	if len(sha) > 7 {
		sha = sha[:7]
	}

	message, _, _ := strings.Cut(rc.GetCommit().GetMessage(), "\n")

	author := rc.GetCommit().GetAuthor().GetName()
	if author == "" {
		author = "someone"
	}

	return model.Commit{
		SHA:       sha,
		Message:   strings.TrimSpace(message),
		Author:    author,
		Timestamp: rc.GetCommit().GetAuthor().GetDate().Time,
	}
}

func classifyError(err error, repo model.TargetRepo) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return goerr.Wrap(types.ErrTransient, "GitHub rate limit exceeded",
			goerr.V("repo", repo.Slug()),
			goerr.V("reset", rateErr.Rate.Reset),
		)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return goerr.Wrap(types.ErrTransient, "GitHub abuse rate limit triggered",
			goerr.V("repo", repo.Slug()),
		)
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch code := ghErr.Response.StatusCode; {
		case code == http.StatusUnauthorized || code == http.StatusForbidden:
			return goerr.Wrap(types.ErrGitHubAuth, "GitHub rejected the credentials",
				goerr.V("repo", repo.Slug()),
				goerr.V("status", code),
			)
		case code == http.StatusNotFound:
			return goerr.Wrap(types.ErrInvalidOption, "repository not found",
				goerr.V("repo", repo.Slug()),
			)
		case code >= http.StatusInternalServerError:
			return goerr.Wrap(types.ErrTransient, "GitHub server error",
				goerr.V("repo", repo.Slug()),
				goerr.V("status", code),
			)
		}
		return goerr.Wrap(err, "GitHub request failed", goerr.V("repo", repo.Slug()))
	}

	// Transport level failures are worth another attempt.
	return goerr.Wrap(types.ErrTransient, "GitHub request failed",
		goerr.V("repo", repo.Slug()),
		goerr.V("cause", err.Error()),
	)
}
