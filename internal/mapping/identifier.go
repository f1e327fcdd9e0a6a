package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedIdentifier is returned for identifiers that are not of the form owner/repo
var ErrMalformedIdentifier = errors.New("malformed identifier")

// OwnerRepo addresses a repository within an account or organization
type OwnerRepo struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

func (o OwnerRepo) String() string {
	return o.Owner + "/" + o.Repo
}

// Rename is a parsed mapping ready to be dispatched
type Rename struct {
	Origin OwnerRepo `json:"origin"`
	Target OwnerRepo `json:"target"`
}

// OwnerChanged reports whether the target names a different owner than the origin.
// Renaming never transfers ownership.
func (r Rename) OwnerChanged() bool {
	return !strings.EqualFold(r.Origin.Owner, r.Target.Owner)
}

// ParseOwnerRepo splits an owner/repo identifier on its first slash
func ParseOwnerRepo(s string) (OwnerRepo, error) {
	owner, repo, ok := strings.Cut(s, "/")
	owner = strings.TrimSpace(owner)
	repo = strings.TrimSpace(repo)

	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return OwnerRepo{}, fmt.Errorf("%w: %q is not of the form owner/repo", ErrMalformedIdentifier, s)
	}

	return OwnerRepo{Owner: owner, Repo: repo}, nil
}

// Parse converts every mapping into a Rename. Malformed rows are collected and
// reported together so the whole batch is rejected before any request is sent.
func Parse(mappings []RenameMapping) ([]Rename, error) {
	renames := make([]Rename, 0, len(mappings))
	var errs []error

	for i, m := range mappings {
		line := m.Line
		if line == 0 {
			line = i + 2
		}

		origin, err := ParseOwnerRepo(m.Origin)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d, column %s: %w", line, originColumn, err))
		}

		target, err := ParseOwnerRepo(m.Target)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d, column %s: %w", line, targetColumn, err))
		}

		renames = append(renames, Rename{Origin: origin, Target: target})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return renames, nil
}
