package cli

import (
	"context"
	"log/slog"

	"github.com/gitoon/gitoon/pkg/cli/config"
	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/infra"
	"github.com/gitoon/gitoon/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func generateCommand() *cli.Command {
	var (
		repoSlug string
		dateStr  string
		deliver  string

		github  config.GitHub
		gemini  config.Gemini
		storage config.Storage
		slack   config.Slack
		sentry  config.Sentry
	)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen", "g"},
		Usage:   "Draw one day of commits as a 4-panel comic strip",
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
				Usage:       "Day to draw as YYYY-MM-DD in UTC (yesterday if not specified)",
				Sources:     cli.EnvVars("GITOON_DATE"),
				Destination: &dateStr,
			},
			&cli.StringFlag{
				Name:        "deliver",
				Usage:       "Deliver the strip right after generation [issue|slack|local]",
				Sources:     cli.EnvVars("GITOON_DELIVER"),
				Destination: &deliver,
			},
		}, github.Flags(), gemini.Flags(), storage.Flags(), slack.Flags(), sentry.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting generate",
				slog.String("repo", repoSlug),
				slog.String("date", dateStr),
				slog.String("deliver", deliver),
				slog.Any("github", github),
				slog.Any("gemini", gemini),
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

			geminiClient, err := gemini.NewClient(ctx)
			if err != nil {
				return err
			}
			infraOptions = append(infraOptions,
				infra.WithTextModel(geminiClient),
				infra.WithImageModel(geminiClient),
			)

			uc := NewUseCase(infra.New(infraOptions...))

			result, err := uc.GenerateStrip(ctx, &model.GenerateStripInput{
				Repo:    repo,
				Date:    date,
				Channel: types.DeliveryChannel(deliver),
			})
			if err != nil {
				return goerr.Wrap(err, "failed to generate strip")
			}

			attrs := []any{
				slog.String("outcome", string(result.Outcome)),
				slog.Int("commits", result.CommitCount),
				slog.Int("panels", result.PanelCount),
			}
			if result.Ref != nil {
				attrs = append(attrs, slog.String("image", result.Ref.ImagePath))
			}
			logging.From(ctx).Info("Generate completed", attrs...)

			return nil
		},
	}
}
