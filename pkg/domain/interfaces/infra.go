package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . CommitSource TextModel ImageModel Publisher

import (
	"context"

	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
)

// CommitSource lists the commits of a repository for one UTC day.
type CommitSource interface {
	ListCommits(ctx context.Context, repo model.TargetRepo, date types.ComicDate) ([]model.Commit, error)
}

// TextModel generates a JSON document from a system prompt and user content.
type TextModel interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ImageModel draws a single panel image from a prompt. The returned bytes
// are an encoded image in whatever format the model produced.
type ImageModel interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// Publisher delivers a finished strip to one destination.
type Publisher interface {
	Publish(ctx context.Context, strip *model.ComicStrip) error
}
