package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/gitoon/gitoon/pkg/domain/model"
)

type UseCase interface {
	GenerateStrip(ctx context.Context, input *model.GenerateStripInput) (*model.GenerateStripResult, error)
	PublishStrip(ctx context.Context, input *model.PublishStripInput) error
}
