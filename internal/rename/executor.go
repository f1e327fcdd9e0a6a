package rename

import (
	"context"
	"fmt"

	"github.com/google/go-github/v66/github"
	"github.com/konflux-ci/rename-repos/internal/mapping"
)

// RepositoryEditor is the subset of the GitHub repositories API used for renames.
// *github.RepositoriesService satisfies it.
type RepositoryEditor interface {
	Edit(ctx context.Context, owner, repo string, repository *github.Repository) (*github.Repository, *github.Response, error)
}

// Executor issues rename requests
type Executor struct {
	repos RepositoryEditor
}

// NewExecutor creates a new rename executor
func NewExecutor(repos RepositoryEditor) *Executor {
	return &Executor{repos: repos}
}

// Rename renames origin to the target's repository name. The target owner is
// not applied: the update call cannot move a repository to another owner.
func (e *Executor) Rename(ctx context.Context, r mapping.Rename) error {
	update := &github.Repository{
		Name: github.String(r.Target.Repo),
	}

	if _, _, err := e.repos.Edit(ctx, r.Origin.Owner, r.Origin.Repo, update); err != nil {
		return fmt.Errorf("GitHub API error: %w", err)
	}
	return nil
}
