package cli

import (
	"context"
	"strings"

	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
)

// DetectTargetRepo reads the origin remote of the git repository at path and
// parses the GitHub owner/name from its URL.
func DetectTargetRepo(ctx context.Context, path string) (model.TargetRepo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return model.TargetRepo{}, goerr.Wrap(err, "failed to open git repository")
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return model.TargetRepo{}, goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return model.TargetRepo{}, goerr.New("no remote URL found")
	}

	// Parse git remote URL (e.g., git@github.com:owner/repo.git or https://github.com/owner/repo.git)
	url := remote.Config().URLs[0]
	var owner, repoName string

	if strings.HasPrefix(url, "git@github.com:") {
		// SSH format: git@github.com:owner/repo.git
		parts := strings.TrimPrefix(url, "git@github.com:")
		parts = strings.TrimSuffix(parts, ".git")
		ownerRepo := strings.Split(parts, "/")
		if len(ownerRepo) == 2 {
			owner = ownerRepo[0]
			repoName = ownerRepo[1]
		}
	} else if strings.Contains(url, "github.com/") {
		// HTTPS format: https://github.com/owner/repo.git
		parts := strings.Split(url, "github.com/")
		if len(parts) == 2 {
			parts[1] = strings.TrimSuffix(parts[1], ".git")
			ownerRepo := strings.Split(parts[1], "/")
			if len(ownerRepo) == 2 {
				owner = ownerRepo[0]
				repoName = ownerRepo[1]
			}
		}
	}

	if owner == "" || repoName == "" {
		return model.TargetRepo{}, goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	return model.TargetRepo{Owner: owner, Name: repoName}, nil
}
