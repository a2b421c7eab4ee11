package interfaces

import (
	"context"

	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
)

//go:generate moq -out ../mock/strip_repository_mock.go -pkg mock . StripRepository

// StripRepository stores finished strips keyed by repository and date.
type StripRepository interface {
	// Put persists the strip image and its record. It is idempotent: when a
	// complete strip already exists for the key, the stored artifacts are
	// left untouched and created is false.
	Put(ctx context.Context, repo model.TargetRepo, date types.ComicDate, image []byte, record *model.StripRecord) (ref *model.StripRef, created bool, err error)

	// Get loads a stored strip. It returns repository.ErrNotFound when no
	// complete strip exists for the key.
	Get(ctx context.Context, repo model.TargetRepo, date types.ComicDate) (*model.ComicStrip, error)
}
