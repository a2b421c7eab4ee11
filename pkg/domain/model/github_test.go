package model_test

import (
	"testing"

	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestParseTargetRepo(t *testing.T) {
	t.Run("valid slug", func(t *testing.T) {
		repo := gt.R1(model.ParseTargetRepo("gitoon/demo")).NoError(t)
		gt.V(t, repo.Owner).Equal("gitoon")
		gt.V(t, repo.Name).Equal("demo")
		gt.V(t, repo.Slug()).Equal("gitoon/demo")
	})

	t.Run("missing separator fails", func(t *testing.T) {
		_, err := model.ParseTargetRepo("demo")
		gt.Error(t, err)
	})

	t.Run("empty owner fails", func(t *testing.T) {
		_, err := model.ParseTargetRepo("/demo")
		gt.Error(t, err)
	})

	t.Run("empty name fails", func(t *testing.T) {
		_, err := model.ParseTargetRepo("gitoon/")
		gt.Error(t, err)
	})

	t.Run("extra separator fails", func(t *testing.T) {
		_, err := model.ParseTargetRepo("a/b/c")
		gt.Error(t, err)
	})
}

func TestTargetRepoValidate(t *testing.T) {
	t.Run("valid repo passes validation", func(t *testing.T) {
		repo := model.TargetRepo{Owner: "test-owner", Name: "test-repo"}
		gt.NoError(t, repo.Validate())
	})

	t.Run("missing owner fails validation", func(t *testing.T) {
		repo := model.TargetRepo{Name: "test-repo"}
		gt.Error(t, repo.Validate())
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		repo := model.TargetRepo{Owner: "test-owner"}
		gt.Error(t, repo.Validate())
	})
}

func TestCommitPromptLine(t *testing.T) {
	commit := model.Commit{
		SHA:     "a1b2c3d",
		Message: "fix login timeout",
		Author:  "alice",
	}
	gt.V(t, commit.PromptLine()).Equal("- [a1b2c3d] fix login timeout")
}
