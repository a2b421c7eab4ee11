package config

import (
	"log/slog"

	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/infra/slackbot"
	"github.com/urfave/cli/v3"
)

type Slack struct {
	webhookURL types.SlackWebhookURL `masq:"secret"`
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL, enables the slack channel",
			Category:    "Slack",
			Destination: (*string)(&x.webhookURL),
			Sources:     cli.EnvVars("GITOON_SLACK_WEBHOOK_URL"),
		},
	}
}

func (x *Slack) Enabled() bool {
	return x.webhookURL != ""
}

func (x *Slack) NewPublisher() (*slackbot.Publisher, error) {
	return slackbot.New(x.webhookURL)
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("webhookURL.len", len(x.webhookURL)),
	)
}
