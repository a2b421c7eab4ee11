package config_test

import (
	"context"
	"testing"

	"github.com/gitoon/gitoon/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestGitHubFlags(t *testing.T) {
	githubConfig := &config.GitHub{}
	flags := githubConfig.Flags()

	gt.V(t, len(flags)).Equal(5)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["github-token"])
	gt.True(t, flagNames["github-app-id"])
	gt.True(t, flagNames["github-app-install-id"])
	gt.True(t, flagNames["github-app-private-key"])
	gt.True(t, flagNames["github-base-url"])
}

func TestGitHubNewClientWithoutCredentials(t *testing.T) {
	githubConfig := &config.GitHub{}

	// Anonymous client works for public repositories
	client := gt.R1(githubConfig.NewClient(context.Background())).NoError(t)
	gt.V(t, client).NotEqual(nil)
}
