package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gitoon/gitoon/pkg/domain/interfaces"
	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/repository"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for StripRepository
// This is the main entry point for testing any StripRepository implementation
func TestAll(t *testing.T, repo interfaces.StripRepository) {
	t.Run("PutAndGet", func(t *testing.T) {
		TestPutAndGet(t, repo)
	})
	t.Run("PutIsIdempotent", func(t *testing.T) {
		TestPutIsIdempotent(t, repo)
	})
	t.Run("GetNotFound", func(t *testing.T) {
		TestGetNotFound(t, repo)
	})
	t.Run("KeysAreIndependent", func(t *testing.T) {
		TestKeysAreIndependent(t, repo)
	})
	t.Run("InvalidInput", func(t *testing.T) {
		TestInvalidInput(t, repo)
	})
}

func newTestTarget() model.TargetRepo {
	return model.TargetRepo{
		Owner: fmt.Sprintf("owner-%s", uuid.New().String()[:8]),
		Name:  fmt.Sprintf("repo-%s", uuid.New().String()[:8]),
	}
}

func newTestStrip(target model.TargetRepo, date types.ComicDate) ([]byte, *model.StripRecord) {
	image := []byte("png-bytes-" + uuid.NewString())
	record := &model.StripRecord{
		Date: date,
		Repo: target.Slug(),
		Commits: []model.Commit{
			{
				SHA:       "a1b2c3d",
				Message:   "fix the village well",
				Author:    "knight",
				Timestamp: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			},
		},
		Panels: model.PanelScript{
			{Title: "One", Scene: "a knight at a well", Bubbles: []model.Bubble{{Speaker: "Knight", Text: "Fixed."}}},
			{Title: "Two", Scene: "villagers cheering"},
			{Title: "Three", Scene: "a bug sulks in a barrel"},
			{Title: "Four", Scene: "sunset over the village"},
		},
	}
	return image, record
}

// TestPutAndGet tests the basic store and load round trip
func TestPutAndGet(t *testing.T, repo interfaces.StripRepository) {
	ctx := context.Background()
	target := newTestTarget()
	date := types.ComicDate("2026-03-14")
	image, record := newTestStrip(target, date)

	ref, created, err := repo.Put(ctx, target, date, image, record)
	gt.NoError(t, err)
	gt.True(t, created)
	gt.V(t, ref).NotEqual(nil)
	gt.V(t, ref.ImagePath).NotEqual("")
	gt.V(t, ref.ScriptPath).NotEqual("")

	// Mutating the caller's copies must not affect what was stored
	image[0] = 'X'
	record.Commits[0].Message = "mutated after put"

	strip := gt.R1(repo.Get(ctx, target, date)).NoError(t)
	gt.V(t, strip.Image[0]).Equal(byte('p'))
	gt.V(t, strip.Record.Repo).Equal(target.Slug())
	gt.V(t, strip.Record.Date).Equal(date)
	gt.A(t, strip.Record.Commits).Length(1)
	gt.V(t, strip.Record.Commits[0].Message).Equal("fix the village well")
	gt.A(t, strip.Record.Panels).Length(model.PanelCount)
	gt.V(t, strip.Record.Panels[0].Bubbles[0].Speaker).Equal("Knight")
	gt.V(t, strip.Ref.ImagePath).Equal(ref.ImagePath)
	gt.V(t, strip.Ref.ScriptPath).Equal(ref.ScriptPath)
}

// TestPutIsIdempotent tests that a second Put for the same key keeps the
// stored artifacts untouched
func TestPutIsIdempotent(t *testing.T, repo interfaces.StripRepository) {
	ctx := context.Background()
	target := newTestTarget()
	date := types.ComicDate("2026-03-15")
	image, record := newTestStrip(target, date)

	ref1, created, err := repo.Put(ctx, target, date, image, record)
	gt.NoError(t, err)
	gt.True(t, created)

	// Second put with different content must be a no-op
	image2, record2 := newTestStrip(target, date)
	record2.Commits[0].Message = "a different day, allegedly"

	ref2, created, err := repo.Put(ctx, target, date, image2, record2)
	gt.NoError(t, err)
	gt.False(t, created)
	gt.V(t, ref2.ImagePath).Equal(ref1.ImagePath)
	gt.V(t, ref2.ScriptPath).Equal(ref1.ScriptPath)

	strip := gt.R1(repo.Get(ctx, target, date)).NoError(t)
	gt.V(t, strip.Image).Equal(image)
	gt.V(t, strip.Record.Commits[0].Message).Equal("fix the village well")
}

// TestGetNotFound tests the sentinel error for missing strips
func TestGetNotFound(t *testing.T, repo interfaces.StripRepository) {
	ctx := context.Background()

	_, err := repo.Get(ctx, newTestTarget(), types.ComicDate("2026-01-01"))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestKeysAreIndependent tests that (repo, date) pairs do not collide
func TestKeysAreIndependent(t *testing.T, repo interfaces.StripRepository) {
	ctx := context.Background()
	targetA := newTestTarget()
	targetB := newTestTarget()
	date1 := types.ComicDate("2026-03-16")
	date2 := types.ComicDate("2026-03-17")

	imageA1, recordA1 := newTestStrip(targetA, date1)
	imageA2, recordA2 := newTestStrip(targetA, date2)
	imageB1, recordB1 := newTestStrip(targetB, date1)

	_, _, err := repo.Put(ctx, targetA, date1, imageA1, recordA1)
	gt.NoError(t, err)
	_, _, err = repo.Put(ctx, targetA, date2, imageA2, recordA2)
	gt.NoError(t, err)
	_, _, err = repo.Put(ctx, targetB, date1, imageB1, recordB1)
	gt.NoError(t, err)

	gt.V(t, gt.R1(repo.Get(ctx, targetA, date1)).NoError(t).Image).Equal(imageA1)
	gt.V(t, gt.R1(repo.Get(ctx, targetA, date2)).NoError(t).Image).Equal(imageA2)
	gt.V(t, gt.R1(repo.Get(ctx, targetB, date1)).NoError(t).Image).Equal(imageB1)

	_, err = repo.Get(ctx, targetB, date2)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestInvalidInput tests rejection of unusable Put arguments
func TestInvalidInput(t *testing.T, repo interfaces.StripRepository) {
	ctx := context.Background()
	target := newTestTarget()
	date := types.ComicDate("2026-03-18")
	image, record := newTestStrip(target, date)

	t.Run("empty image", func(t *testing.T) {
		_, _, err := repo.Put(ctx, target, date, nil, record)
		gt.Error(t, err)
	})

	t.Run("nil record", func(t *testing.T) {
		_, _, err := repo.Put(ctx, target, date, image, nil)
		gt.Error(t, err)
	})

	t.Run("empty owner", func(t *testing.T) {
		_, _, err := repo.Put(ctx, model.TargetRepo{Name: "repo"}, date, image, record)
		gt.Error(t, err)
	})

	t.Run("broken date", func(t *testing.T) {
		_, _, err := repo.Put(ctx, target, types.ComicDate("not-a-date"), image, record)
		gt.Error(t, err)
	})
}
