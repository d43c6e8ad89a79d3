package sitedata

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/mekedron/cafe-menu/internal/catalog"
	"github.com/mekedron/cafe-menu/internal/domain"
	"github.com/mekedron/cafe-menu/internal/gallery"
)

const (
	// CatalogFile holds the menu sections.
	CatalogFile = "products.json"
	// VariablesFile holds contact details and branches.
	VariablesFile = "variables.json"
	// VariablesYAMLFile is accepted in a data directory instead of VariablesFile.
	VariablesYAMLFile = "variables.yaml"
	// GalleryFile holds gallery images.
	GalleryFile = "galleryimage.json"

	embeddedSourceName = "embedded"
)

//go:embed data/*.json
var embeddedData embed.FS

// Source reads site data files from a directory, falling back to the
// copies embedded in the binary for files the directory does not have.
type Source struct {
	dir    string
	logger zerolog.Logger
}

// NewSource creates a source. An empty dir uses only embedded data.
func NewSource(dir string, logger zerolog.Logger) *Source {
	return &Source{dir: dir, logger: logger}
}

// Name describes where data comes from.
func (s *Source) Name() string {
	if s.dir == "" {
		return embeddedSourceName
	}
	return s.dir
}

// Catalog reads and leniently parses the catalog file.
func (s *Source) Catalog(ctx context.Context) ([]domain.Section, error) {
	data, err := s.read(ctx, CatalogFile)
	if err != nil {
		return nil, err
	}
	return catalog.ParseSections(data), nil
}

// Index reads the catalog and builds its index.
func (s *Source) Index(ctx context.Context) (*catalog.Index, error) {
	sections, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	index := catalog.NewIndex(sections)
	s.logger.Debug().
		Int("sections", len(sections)).
		Int("items", index.Len()).
		Int("categories", len(index.Categories())).
		Msg("catalog index built")
	return index, nil
}

// Variables reads the site variables. In a data directory a YAML file takes
// precedence over the JSON one.
func (s *Source) Variables(ctx context.Context) (domain.SiteVariables, error) {
	var vars domain.SiteVariables
	if s.dir != "" {
		data, err := os.ReadFile(filepath.Join(s.dir, VariablesYAMLFile))
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &vars); err != nil {
				return domain.SiteVariables{}, fmt.Errorf("parse %s: %w", VariablesYAMLFile, err)
			}
			s.logger.Debug().Str("file", VariablesYAMLFile).Str("dir", s.dir).Msg("site variables loaded")
			return vars, nil
		case !errors.Is(err, fs.ErrNotExist):
			return domain.SiteVariables{}, fmt.Errorf("read %s: %w", VariablesYAMLFile, err)
		}
	}
	data, err := s.read(ctx, VariablesFile)
	if err != nil {
		return domain.SiteVariables{}, err
	}
	if err := json.Unmarshal(data, &vars); err != nil {
		return domain.SiteVariables{}, fmt.Errorf("parse %s: %w", VariablesFile, err)
	}
	return vars, nil
}

// Gallery reads and normalizes the gallery file.
func (s *Source) Gallery(ctx context.Context) ([]gallery.Slide, error) {
	data, err := s.read(ctx, GalleryFile)
	if err != nil {
		return nil, err
	}
	return gallery.ParseSlides(data), nil
}

func (s *Source) read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.dir != "" {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err == nil {
			s.logger.Debug().Str("file", name).Str("dir", s.dir).Msg("site data loaded from directory")
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		s.logger.Debug().Str("file", name).Str("dir", s.dir).Msg("file missing in data directory, using embedded copy")
	}
	data, err := fs.ReadFile(embeddedData, "data/"+name)
	if err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", name, err)
	}
	return data, nil
}
