package config

import (
	"context"
	"log/slog"

	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/infra/gh"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	baseURL    string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub access token (anonymous access is used when no credential is set)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GITOON_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("GITOON_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("GITOON_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key in PEM format",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("GITOON_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL for GitHub Enterprise",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("GITOON_GITHUB_BASE_URL"),
		},
	}
}

func (x *GitHub) NewClient(ctx context.Context) (*gh.Client, error) {
	var options []gh.Option
	if x.token != "" {
		options = append(options, gh.WithToken(x.token))
	}
	if x.appID != 0 || x.installID != 0 || x.privateKey != "" {
		options = append(options, gh.WithApp(x.appID, x.installID, x.privateKey))
	}
	if x.baseURL != "" {
		options = append(options, gh.WithBaseURL(x.baseURL))
	}

	return gh.New(ctx, options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("baseURL", x.baseURL),
	)
}
