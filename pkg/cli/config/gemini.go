package config

import (
	"context"
	"log/slog"

	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/infra/gemini"
	"github.com/urfave/cli/v3"
)

type Gemini struct {
	apiKey     types.GeminiAPIKey `masq:"secret"`
	textModel  string
	imageModel string
}

func (x *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key",
			Category:    "Gemini",
			Destination: (*string)(&x.apiKey),
			Sources:     cli.EnvVars("GITOON_GEMINI_API_KEY", "GEMINI_API_KEY"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "gemini-text-model",
			Usage:       "Model that writes comic scripts",
			Category:    "Gemini",
			Value:       gemini.DefaultTextModel,
			Destination: &x.textModel,
			Sources:     cli.EnvVars("GITOON_GEMINI_TEXT_MODEL"),
		},
		&cli.StringFlag{
			Name:        "gemini-image-model",
			Usage:       "Model that draws panel images",
			Category:    "Gemini",
			Value:       gemini.DefaultImageModel,
			Destination: &x.imageModel,
			Sources:     cli.EnvVars("GITOON_GEMINI_IMAGE_MODEL"),
		},
	}
}

func (x *Gemini) NewClient(ctx context.Context) (*gemini.Client, error) {
	return gemini.New(ctx, x.apiKey,
		gemini.WithTextModel(x.textModel),
		gemini.WithImageModel(x.imageModel),
	)
}

func (x Gemini) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("apiKey.len", len(x.apiKey)),
		slog.String("textModel", x.textModel),
		slog.String("imageModel", x.imageModel),
	)
}
