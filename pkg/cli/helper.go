package cli

import (
	"context"

	"github.com/gitoon/gitoon/pkg/cli/config"
	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/infra"
	"github.com/gitoon/gitoon/pkg/infra/gh"
	"github.com/gitoon/gitoon/pkg/infra/viewer"
	"github.com/gitoon/gitoon/pkg/utils/logging"
)

func resolveTargetRepo(ctx context.Context, slug string) (model.TargetRepo, error) {
	if slug != "" {
		return model.ParseTargetRepo(slug)
	}
	return DetectTargetRepo(ctx, ".")
}

func resolveDate(ctx context.Context, s string) (types.ComicDate, error) {
	if s == "" {
		return types.YesterdayUTC(logging.CtxTime(ctx)), nil
	}
	return types.NewComicDate(s)
}

// newInfraOptions wires the clients both commands share: the GitHub client
// as commit source and issue publisher, the strip store, the local viewer,
// and the Slack publisher when a webhook is configured.
func newInfraOptions(ctx context.Context, githubConfig *config.GitHub, storageConfig *config.Storage, slackConfig *config.Slack) ([]infra.Option, error) {
	ghClient, err := githubConfig.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	store, err := storageConfig.NewRepository()
	if err != nil {
		return nil, err
	}

	options := []infra.Option{
		infra.WithCommitSource(ghClient),
		infra.WithStripRepository(store),
		infra.WithPublisher(types.ChannelIssue, gh.NewIssuePublisher(ghClient)),
		infra.WithPublisher(types.ChannelLocal, viewer.New()),
	}

	if slackConfig.Enabled() {
		slackPublisher, err := slackConfig.NewPublisher()
		if err != nil {
			return nil, err
		}
		options = append(options, infra.WithPublisher(types.ChannelSlack, slackPublisher))
	}

	return options, nil
}
