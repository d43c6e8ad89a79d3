package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/mekedron/cafe-menu/internal/catalog"
	"github.com/mekedron/cafe-menu/internal/config"
	"github.com/mekedron/cafe-menu/internal/domain"
	"github.com/mekedron/cafe-menu/internal/gallery"
	"github.com/mekedron/cafe-menu/internal/i18n"
)

var unknownCommandPattern = regexp.MustCompile(`unknown command "([^"]+)"`)

// SiteSource provides the static site data.
type SiteSource interface {
	Name() string
	Index(ctx context.Context) (*catalog.Index, error)
	Variables(ctx context.Context) (domain.SiteVariables, error)
	Gallery(ctx context.Context) ([]gallery.Slide, error)
}

// BranchResolver resolves branch selections.
type BranchResolver interface {
	Find(ctx context.Context, name string) (domain.Branch, error)
}

// PreferencesManager stores the persisted language choice.
type PreferencesManager interface {
	Path() string
	Load(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, prefs domain.Preferences) error
}

// Dependencies wires runtime services.
type Dependencies struct {
	Site         SiteSource
	Branches     BranchResolver
	Preferences  PreferencesManager
	Translations *i18n.Bundle
	Settings     config.Settings
	Logger       zerolog.Logger
	Version      string
}

var errVersionShown = fmt.Errorf("version shown")

// Execute runs the CLI with injected dependencies.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout io.Writer, stderr io.Writer) int {
	cmd := NewRootCommand(deps)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil || err == errVersionShown {
		return 0
	}
	var controlled *exitError
	if errors.As(err, &controlled) {
		return controlled.code
	}

	if matches := unknownCommandPattern.FindStringSubmatch(err.Error()); len(matches) > 1 {
		_, _ = fmt.Fprintf(stderr, "No such command '%s'\n", matches[1])
		return 2
	}

	if msg := err.Error(); msg != "" {
		_, _ = fmt.Fprintln(stderr, msg)
	}
	return 1
}
