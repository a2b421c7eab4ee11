package slackbot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gitoon/gitoon/pkg/domain/interfaces"
	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Publisher posts a strip summary to a Slack incoming webhook. Webhooks
// cannot upload files, so the message carries the dialogue and the stored
// image path instead of the image itself.
type Publisher struct {
	webhookURL types.SlackWebhookURL
}

var _ interfaces.Publisher = (*Publisher)(nil)

func New(webhookURL types.SlackWebhookURL) (*Publisher, error) {
	if webhookURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Slack webhook URL is empty")
	}
	return &Publisher{webhookURL: webhookURL}, nil
}

func (x *Publisher) Publish(ctx context.Context, strip *model.ComicStrip) error {
	if err := slack.PostWebhookContext(ctx, string(x.webhookURL), buildMessage(strip)); err != nil {
		return goerr.Wrap(err, "failed to post strip to Slack",
			goerr.V("repo", strip.Record.Repo),
			goerr.V("date", strip.Record.Date),
		)
	}

	logging.From(ctx).Info("Posted strip to Slack",
		slog.String("repo", strip.Record.Repo),
		slog.String("date", string(strip.Record.Date)),
	)

	return nil
}

func buildMessage(strip *model.ComicStrip) *slack.WebhookMessage {
	record := strip.Record

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType,
			fmt.Sprintf("Daily Comic — %s", record.Date), true, false)),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("%d commits in `%s`", len(record.Commits), record.Repo), false, false)),
		slack.NewDividerBlock(),
	}

	for i, panel := range record.Panels {
		var sb strings.Builder
		fmt.Fprintf(&sb, "*Panel %d: %s*", i+1, panel.Title)
		for _, bubble := range panel.Bubbles {
			sb.WriteString("\n> " + bubble.String())
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, sb.String(), false, false), nil, nil))
	}

	if strip.Ref.ImagePath != "" {
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("Strip image: `%s`", strip.Ref.ImagePath), false, false), nil, nil))
	}

	return &slack.WebhookMessage{
		Text:   fmt.Sprintf("Daily Comic — %s — %d commits", record.Date, len(record.Commits)),
		Blocks: &slack.Blocks{BlockSet: blocks},
	}
}
