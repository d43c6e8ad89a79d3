package branch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mekedron/cafe-menu/internal/domain"
)

var (
	// ErrNoBranches indicates the site variables list no branches.
	ErrNoBranches = errors.New("no branches configured")
	// ErrBranchNotFound indicates the requested branch does not exist.
	ErrBranchNotFound = errors.New("branch not found")
)

// Loader provides site variables.
type Loader interface {
	Variables(ctx context.Context) (domain.SiteVariables, error)
}

// Resolver resolves branch names.
type Resolver struct {
	loader Loader
}

// NewResolver creates a branch resolver.
func NewResolver(loader Loader) *Resolver {
	return &Resolver{loader: loader}
}

// Find resolves an explicit branch name, or the first branch when name is blank.
func (r *Resolver) Find(ctx context.Context, name string) (domain.Branch, error) {
	vars, err := r.loader.Variables(ctx)
	if err != nil {
		return domain.Branch{}, err
	}
	if len(vars.Branches) == 0 {
		return domain.Branch{}, ErrNoBranches
	}
	if strings.TrimSpace(name) == "" {
		return vars.Branches[0], nil
	}

	want := strings.ToLower(strings.TrimSpace(name))
	for _, branch := range vars.Branches {
		if strings.ToLower(strings.TrimSpace(branch.Name)) == want {
			return branch, nil
		}
	}
	available := make([]string, 0, len(vars.Branches))
	for _, branch := range vars.Branches {
		available = append(available, branch.Name)
	}
	return domain.Branch{}, fmt.Errorf("%w: %s (available: %s)", ErrBranchNotFound, want, strings.Join(available, ", "))
}
