package cli

import (
	"context"
	"log/slog"

	"github.com/gitoon/gitoon/pkg/cli/config"
	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/infra"
	"github.com/gitoon/gitoon/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func publishCommand() *cli.Command {
	var (
		repoSlug string
		dateStr  string
		deliver  string

		github  config.GitHub
		storage config.Storage
		slack   config.Slack
		sentry  config.Sentry
	)

	return &cli.Command{
		Name:    "publish",
		Aliases: []string{"pub", "p"},
		Usage:   "Deliver an already generated strip through a channel",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "repo",
				Aliases:     []string{"r"},
				Usage:       "Target repository as owner/name (auto-detect from git remote if not specified)",
				Sources:     cli.EnvVars("GITOON_REPO"),
				Destination: &repoSlug,
			},
			&cli.StringFlag{
				Name:        "date",
				Aliases:     []string{"d"},
				Usage:       "Day to publish as YYYY-MM-DD in UTC (yesterday if not specified)",
				Sources:     cli.EnvVars("GITOON_DATE"),
				Destination: &dateStr,
			},
			&cli.StringFlag{
				Name:        "deliver",
				Usage:       "Delivery channel [issue|slack|local]",
				Sources:     cli.EnvVars("GITOON_DELIVER"),
				Destination: &deliver,
				Required:    true,
			},
		}, github.Flags(), storage.Flags(), slack.Flags(), sentry.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting publish",
				slog.String("repo", repoSlug),
				slog.String("date", dateStr),
				slog.String("deliver", deliver),
				slog.Any("github", github),
				slog.Any("storage", storage),
				slog.Any("slack", slack),
				slog.Any("sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			repo, err := resolveTargetRepo(ctx, repoSlug)
			if err != nil {
				return err
			}

			date, err := resolveDate(ctx, dateStr)
			if err != nil {
				return err
			}

			infraOptions, err := newInfraOptions(ctx, &github, &storage, &slack)
			if err != nil {
				return err
			}

			uc := NewUseCase(infra.New(infraOptions...))

			return uc.PublishStrip(ctx, &model.PublishStripInput{
				Repo:    repo,
				Date:    date,
				Channel: types.DeliveryChannel(deliver),
			})
		},
	}
}
