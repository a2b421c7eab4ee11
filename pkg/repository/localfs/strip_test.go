package localfs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/repository/localfs"
	"github.com/gitoon/gitoon/pkg/repository/testhelper"
	"github.com/m-mizutani/gt"
)

func TestLocalFSStripRepository(t *testing.T) {
	repo := gt.R1(localfs.New(t.TempDir())).NoError(t)
	testhelper.TestAll(t, repo)
}

func TestNew(t *testing.T) {
	t.Run("empty base directory fails", func(t *testing.T) {
		_, err := localfs.New("")
		gt.Error(t, err)
	})
}

func TestFileLayout(t *testing.T) {
	baseDir := t.TempDir()
	repo := gt.R1(localfs.New(baseDir)).NoError(t)
	ctx := context.Background()

	target := model.TargetRepo{Owner: "gitoon", Name: "demo"}
	date := types.ComicDate("2026-03-14")
	image := []byte("not-really-a-png")
	record := &model.StripRecord{
		Date: date,
		Repo: target.Slug(),
		Commits: []model.Commit{
			{SHA: "f00ba47", Message: "teach the dragon to lint", Author: "alice", Timestamp: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)},
		},
		Panels: model.PanelScript{
			{Title: "One", Scene: "s1"},
			{Title: "Two", Scene: "s2"},
			{Title: "Three", Scene: "s3"},
			{Title: "Four", Scene: "s4"},
		},
	}

	ref, created, err := repo.Put(ctx, target, date, image, record)
	gt.NoError(t, err)
	gt.True(t, created)

	t.Run("artifacts land under owner/name", func(t *testing.T) {
		wantImage := filepath.Join(baseDir, "gitoon", "demo", "2026-03-14.png")
		wantScript := filepath.Join(baseDir, "gitoon", "demo", "2026-03-14.json")
		gt.V(t, ref.ImagePath).Equal(wantImage)
		gt.V(t, ref.ScriptPath).Equal(wantScript)

		stored := gt.R1(os.ReadFile(wantImage)).NoError(t)
		gt.V(t, stored).Equal(image)
	})

	t.Run("sidecar is decodable JSON", func(t *testing.T) {
		raw := gt.R1(os.ReadFile(ref.ScriptPath)).NoError(t)

		var decoded model.StripRecord
		gt.NoError(t, json.Unmarshal(raw, &decoded))
		gt.V(t, decoded.Repo).Equal("gitoon/demo")
		gt.V(t, decoded.Date).Equal(date)
		gt.A(t, decoded.Commits).Length(1)
		gt.A(t, decoded.Panels).Length(model.PanelCount)
	})

	t.Run("no temp files are left behind", func(t *testing.T) {
		leftovers := gt.R1(filepath.Glob(filepath.Join(baseDir, "gitoon", "demo", ".*.tmp-*"))).NoError(t)
		gt.A(t, leftovers).Length(0)
	})
}

func TestIncompletePair(t *testing.T) {
	baseDir := t.TempDir()
	repo := gt.R1(localfs.New(baseDir)).NoError(t)
	ctx := context.Background()

	target := model.TargetRepo{Owner: "gitoon", Name: "demo"}
	date := types.ComicDate("2026-03-20")
	image := []byte("image-bytes")
	record := &model.StripRecord{
		Date: date,
		Repo: target.Slug(),
		Commits: []model.Commit{
			{SHA: "abc1234", Message: "m", Author: "a"},
		},
		Panels: model.PanelScript{
			{Title: "One", Scene: "s1"},
			{Title: "Two", Scene: "s2"},
			{Title: "Three", Scene: "s3"},
			{Title: "Four", Scene: "s4"},
		},
	}

	ref, created, err := repo.Put(ctx, target, date, image, record)
	gt.NoError(t, err)
	gt.True(t, created)

	// An image without its sidecar is an aborted run, not a stored strip
	gt.NoError(t, os.Remove(ref.ScriptPath))

	_, err = repo.Get(ctx, target, date)
	gt.Error(t, err)

	// A later Put completes the pair again
	_, created, err = repo.Put(ctx, target, date, image, record)
	gt.NoError(t, err)
	gt.True(t, created)

	strip := gt.R1(repo.Get(ctx, target, date)).NoError(t)
	gt.V(t, strip.Image).Equal(image)
}
