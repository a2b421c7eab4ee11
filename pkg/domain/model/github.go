package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// TargetRepo identifies the GitHub repository whose activity is drawn.
type TargetRepo struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// ParseTargetRepo parses an "owner/name" slug.
func ParseTargetRepo(s string) (TargetRepo, error) {
	owner, name, ok := strings.Cut(s, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return TargetRepo{}, goerr.Wrap(types.ErrInvalidOption, "repository must be formatted as owner/name", goerr.V("repo", s))
	}
	return TargetRepo{Owner: owner, Name: name}, nil
}

func (x TargetRepo) Slug() string {
	return x.Owner + "/" + x.Name
}

func (x TargetRepo) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository owner is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository name is empty")
	}
	return nil
}

// Commit is the slice of a repository commit the comic cares about: a short
// SHA, the first line of the message and the author name.
type Commit struct {
	SHA       string    `json:"sha"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

func (x Commit) Validate() error {
	if x.SHA == "" {
		return goerr.Wrap(types.ErrInvalidOption, "commit SHA is empty")
	}
	return nil
}

// PromptLine renders the commit as one line of language model input.
func (x Commit) PromptLine() string {
	return fmt.Sprintf("- [%s] %s", x.SHA, x.Message)
}
